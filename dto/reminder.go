package dto

type CreateReminderRequest struct {
	Name         string `json:"name"`
	FacilityName string `json:"facilityName"`
	DocumentType string `json:"documentType"`
	Type         string `json:"type"`
	Frequency    int    `json:"frequency"`
	DueDate      string `json:"dueDate"`
}
