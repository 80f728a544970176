package dto

import "carehaven/model"

type CreateFacilityRequest struct {
	Name            string          `json:"name" binding:"required"`
	Logo            string          `json:"logo"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Zipcode         string          `json:"zipcode"`
	MaxOccupancy    int             `json:"maxOccupancy"`
	AvailableBeds   int             `json:"availableBeds"`
	AboutUs         string          `json:"aboutUs"`
	ManagerName     string          `json:"managerName"`
	Services        []string        `json:"services"`
	DailyActivities []string        `json:"dailyActivities"`
	Pictures        []string        `json:"pictures"`
	Menu            []model.MenuDay `json:"menu"`
	Contacts        []model.Contact `json:"contacts"`
}

type UpdateFacilityFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

type DeleteFileRequest struct {
	FilePath   string `json:"filePath" binding:"required"`
	FacilityID int    `json:"facilityId" binding:"required"`
}
