package reminder

import (
	"net/http"
	"strconv"

	"carehaven/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteReminder(c *gin.Context, db *gorm.DB) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	deleted, err := services.DeleteReminder(db, id)
	if err != nil {
		respondReminderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Reminder deleted successfully!",
		"deletedReminder": deleted,
	})
}
