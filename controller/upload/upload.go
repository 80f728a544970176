package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"carehaven/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func UploadController(router *gin.Engine, db *gorm.DB) {
	router.POST("/upload", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UploadFile(c)
	})
	router.POST("/delete-file", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteFile(c, db)
	})
}

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

func uploadRoot() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "public/uploads"
}

// UploadFile stores one image under the facility's upload folder and returns
// its public URL.
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File or folder missing!"})
		return
	}
	folder := c.PostForm("folder")
	if folder == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File or folder missing!"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type! Only JPG, JPEG, and PNG are allowed."})
		return
	}

	fileName := c.PostForm("name")
	if fileName == "" {
		fileName = uuid.NewString()
	}

	facilityDir := filepath.Join(uploadRoot(), folder)
	if err := os.MkdirAll(facilityDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	ext := strings.TrimPrefix(contentType, "image/")
	finalFileName := fmt.Sprintf("%s.%s", fileName, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(facilityDir, finalFileName)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": fmt.Sprintf("/uploads/%s/%s", folder, finalFileName)})
}
