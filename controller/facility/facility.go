package facility

import (
	"carehaven/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func FacilityController(router *gin.Engine, db *gorm.DB) {
	// Public listing endpoints feed the marketing site; writes are admin-only.
	router.GET("/facility", func(c *gin.Context) {
		ListFacilitySummaries(c, db)
	})
	router.GET("/facilities", func(c *gin.Context) {
		ListFacilityCards(c, db)
	})
	router.GET("/facility/:id", func(c *gin.Context) {
		GetFacility(c, db)
	})
	router.POST("/facility", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateFacility(c, db)
	})
	router.PATCH("/facility/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateFacilityField(c, db)
	})
}
