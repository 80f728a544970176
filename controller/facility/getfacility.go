package facility

import (
	"net/http"

	"carehaven/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListFacilitySummaries returns the navbar listing: id, name and logo only.
func ListFacilitySummaries(c *gin.Context, db *gorm.DB) {
	var summaries []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Logo string `json:"logo"`
	}
	if err := db.Model(&model.Facility{}).Select("id, name, logo").Find(&summaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch facilities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"facilities": summaries})
}

// ListFacilityCards returns the fields the browse page shows on each card.
func ListFacilityCards(c *gin.Context, db *gorm.DB) {
	var facilities []model.Facility
	err := db.Select("id, name, address, city, state, zipcode, max_occupancy, available_beds, pictures").
		Find(&facilities).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch facilities"})
		return
	}

	cards := make([]gin.H, 0, len(facilities))
	for _, f := range facilities {
		cards = append(cards, gin.H{
			"id":             f.ID,
			"name":           f.Name,
			"address":        f.Address,
			"city":           f.City,
			"state":          f.State,
			"zipcode":        f.Zipcode,
			"max_occupancy":  f.MaxOccupancy,
			"available_beds": f.AvailableBeds,
			"pictures":       f.Pictures,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "facilities": cards})
}

func GetFacility(c *gin.Context, db *gorm.DB) {
	id := c.Param("id")

	var f model.Facility
	if err := db.Where("id = ?", id).First(&f).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch facility"})
		return
	}

	// The dashboard consumes camelCase, unlike the raw row shape elsewhere.
	c.JSON(http.StatusOK, gin.H{
		"facility": gin.H{
			"id":              f.ID,
			"name":            f.Name,
			"logo":            f.Logo,
			"address":         f.Address,
			"city":            f.City,
			"state":           f.State,
			"zipcode":         f.Zipcode,
			"maxOccupancy":    f.MaxOccupancy,
			"availableBeds":   f.AvailableBeds,
			"aboutUs":         f.AboutUs,
			"services":        f.Services,
			"dailyActivities": f.DailyActivities,
			"pictures":        f.Pictures,
			"menu":            f.Menu,
			"contacts":        f.Contacts,
			"managerName":     f.ManagerName,
			"created_at":      f.CreatedAt,
			"updated_at":      f.UpdatedAt,
		},
	})
}
