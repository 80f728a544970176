package upload

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"carehaven/dto"
	"carehaven/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteFile removes an uploaded image from disk and detaches it from the
// facility record: logo paths clear the logo column, anything else is removed
// from the pictures list.
func DeleteFile(c *gin.Context, db *gorm.DB) {
	var request dto.DeleteFileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file path or facility ID"})
		return
	}

	// The stored path is public-relative ("/uploads/<folder>/<file>").
	relative := strings.TrimPrefix(filepath.Clean(request.FilePath), "/uploads/")
	if strings.Contains(relative, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file path or facility ID"})
		return
	}
	absolutePath := filepath.Join(uploadRoot(), relative)
	if err := os.Remove(absolutePath); err != nil && !os.IsNotExist(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	var facility model.Facility
	if err := db.Where("id = ?", request.FacilityID).First(&facility).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	if strings.Contains(request.FilePath, "logo") {
		facility.Logo = ""
	} else {
		pictures := make([]string, 0, len(facility.Pictures))
		for _, p := range facility.Pictures {
			if p != request.FilePath {
				pictures = append(pictures, p)
			}
		}
		facility.Pictures = pictures
	}

	if err := db.Save(&facility).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"facility": facility,
		"message":  "File deleted successfully!",
	})
}
