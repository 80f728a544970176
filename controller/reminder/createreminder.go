package reminder

import (
	"net/http"
	"time"

	"carehaven/dto"
	"carehaven/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateReminder(c *gin.Context, db *gorm.DB) {
	var request dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var dueDate time.Time
	if request.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", request.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate, expected YYYY-MM-DD"})
			return
		}
		dueDate = parsed
	}

	created, err := services.CreateReminder(db, services.CreateReminderInput{
		Name:         request.Name,
		FacilityName: request.FacilityName,
		DocumentType: request.DocumentType,
		Type:         request.Type,
		Frequency:    request.Frequency,
		DueDate:      dueDate,
	})
	if err != nil {
		respondReminderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"reminder": created,
	})
}
