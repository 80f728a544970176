package reminder

import (
	"net/http"
	"strconv"

	"carehaven/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CompleteReminder(c *gin.Context, db *gorm.DB) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	completed, successor, err := services.CompleteReminder(db, id)
	if err != nil {
		respondReminderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"completedReminder": completed,
		"newReminder":       successor,
		"message":           "Reminder marked as completed, and a new reminder has been created.",
	})
}
