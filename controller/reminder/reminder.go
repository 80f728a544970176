package reminder

import (
	"errors"
	"net/http"

	"carehaven/middleware"
	"carehaven/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ReminderController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/reminders", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateReminder(c, db)
		})
		routes.GET("", func(c *gin.Context) {
			ListReminders(c, db)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			CompleteReminder(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteReminder(c, db)
		})
	}
}

func respondReminderError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, services.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
	case errors.Is(err, services.ErrReminderCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "Reminder already completed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
