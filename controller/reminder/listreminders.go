package reminder

import (
	"net/http"

	"carehaven/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListReminders(c *gin.Context, db *gorm.DB) {
	reminders, err := services.ListReminders(db)
	if err != nil {
		respondReminderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reminders": reminders,
	})
}
