package facility

import (
	"encoding/json"
	"net/http"

	"carehaven/dto"
	"carehaven/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// camelFieldMap translates the dashboard's camelCase field names to columns.
var camelFieldMap = map[string]string{
	"dailyActivities": "daily_activities",
	"maxOccupancy":    "max_occupancy",
	"availableBeds":   "available_beds",
	"managerName":     "manager_name",
	"aboutUs":         "about_us",
}

var allowedFields = map[string]bool{
	"name":             true,
	"address":          true,
	"city":             true,
	"state":            true,
	"zipcode":          true,
	"manager_name":     true,
	"about_us":         true,
	"pictures":         true,
	"logo":             true,
	"services":         true,
	"daily_activities": true,
	"contacts":         true,
	"menu":             true,
	"max_occupancy":    true,
	"available_beds":   true,
}

// jsonFields are stored as serialized JSON text, so arbitrary values must be
// marshaled before the column update.
var jsonFields = map[string]bool{
	"services":         true,
	"daily_activities": true,
	"pictures":         true,
	"contacts":         true,
	"menu":             true,
}

// UpdateFacilityField applies a single {field, value} edit from the dashboard.
func UpdateFacilityField(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var request dto.UpdateFacilityFieldRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dbField := request.Field
	if mapped, ok := camelFieldMap[request.Field]; ok {
		dbField = mapped
	}
	if !allowedFields[dbField] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid field"})
		return
	}

	var current model.Facility
	if err := db.Where("id = ?", id).First(&current).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch facility"})
		return
	}

	value := request.Value
	if jsonFields[dbField] {
		serialized, err := json.Marshal(request.Value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value"})
			return
		}
		value = string(serialized)
	}

	if err := db.Model(&model.Facility{}).Where("id = ?", id).Update(dbField, value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update facility"})
		return
	}

	var updated model.Facility
	if err := db.Where("id = ?", id).First(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch facility"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"facility": updated,
		"message":  request.Field + " updated successfully!",
	})
}
