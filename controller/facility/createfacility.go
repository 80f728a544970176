package facility

import (
	"net/http"

	"carehaven/dto"
	"carehaven/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateFacility(c *gin.Context, db *gorm.DB) {
	var request dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	newFacility := model.Facility{
		Name:            request.Name,
		Logo:            request.Logo,
		Address:         request.Address,
		City:            request.City,
		State:           request.State,
		Zipcode:         request.Zipcode,
		MaxOccupancy:    request.MaxOccupancy,
		AvailableBeds:   request.AvailableBeds,
		AboutUs:         request.AboutUs,
		ManagerName:     request.ManagerName,
		Services:        request.Services,
		DailyActivities: request.DailyActivities,
		Pictures:        request.Pictures,
		Menu:            request.Menu,
		Contacts:        request.Contacts,
	}

	if err := db.Create(&newFacility).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save facility"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"facility": newFacility,
	})
}
