package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"carehaven/model"

	"gorm.io/gorm"
)

const (
	StatusNotCompleted = "not-completed"
	StatusCompleted    = "completed"
)

var (
	ErrReminderNotFound  = errors.New("reminder not found")
	ErrReminderCompleted = errors.New("reminder already completed")
)

// ValidationError reports the create fields that were missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid reminder: %s", strings.Join(e.Fields, ", "))
}

// documentTypesByKind lists the document types the dashboard offers per
// reminder type. Values are wire values and must not be "corrected".
var documentTypesByKind = map[string][]string{
	"resident": {
		"tb-test",
		"request-to-remain",
		"service-plan",
		"fall-risk-assessment",
	},
	"employee": {
		"fall-prevention",
		"abuse-neglect",
		"cpr-first-aid",
		"fingerprint",
		"tb-test",
	},
	"facility": {
		"maintaince-log",
		"employees-disaster-drill",
		"evacuation-drill",
		"equipment-log",
		"quality-management",
		"facility-risk-assesment",
		"fire-extinguisher",
		"policy-procedure-manual",
	},
}

func allowedDocumentType(kind string, documentType string) bool {
	for _, dt := range documentTypesByKind[kind] {
		if dt == documentType {
			return true
		}
	}
	return false
}

type CreateReminderInput struct {
	Name         string
	FacilityName string
	DocumentType string
	Type         string
	Frequency    int
	DueDate      time.Time
}

func validateCreate(input CreateReminderInput) *ValidationError {
	var fields []string
	if input.FacilityName == "" {
		fields = append(fields, "facilityName")
	}
	if _, ok := documentTypesByKind[input.Type]; !ok {
		fields = append(fields, "type")
	}
	if input.DocumentType == "" || !allowedDocumentType(input.Type, input.DocumentType) {
		fields = append(fields, "documentType")
	}
	if input.Frequency < 1 {
		fields = append(fields, "frequency")
	}
	if input.DueDate.IsZero() {
		fields = append(fields, "dueDate")
	}
	// Resident and employee documents are about a person, so the name is required.
	if (input.Type == "resident" || input.Type == "employee") && input.Name == "" {
		fields = append(fields, "name")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateReminder validates the input and persists a new not-completed reminder.
// Nothing is written when validation fails.
func CreateReminder(db *gorm.DB, input CreateReminderInput) (*model.Reminder, error) {
	if verr := validateCreate(input); verr != nil {
		return nil, verr
	}

	reminder := model.Reminder{
		FacilityName: input.FacilityName,
		DocumentType: input.DocumentType,
		Type:         input.Type,
		Frequency:    input.Frequency,
		DueDate:      input.DueDate,
		Status:       StatusNotCompleted,
	}
	if input.Name != "" {
		reminder.Name = &input.Name
	}

	if err := db.Create(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// CompleteReminder marks the reminder completed and inserts its successor with
// the rolled-over due date. Both writes share one transaction: either the row
// is completed and the successor exists, or neither happened.
func CompleteReminder(db *gorm.DB, id int) (*model.Reminder, *model.Reminder, error) {
	var current model.Reminder
	if err := db.Where("id = ?", id).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrReminderNotFound
		}
		return nil, nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, nil, tx.Error
	}

	// Guarding on status makes concurrent completes race-safe: only the first
	// caller flips the row, everyone else sees zero rows affected.
	result := tx.Model(&model.Reminder{}).
		Where("id = ? AND status = ?", id, StatusNotCompleted).
		Update("status", StatusCompleted)
	if result.Error != nil {
		tx.Rollback()
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, nil, ErrReminderCompleted
	}

	successor := model.Reminder{
		Name:         current.Name,
		FacilityName: current.FacilityName,
		DocumentType: current.DocumentType,
		Type:         current.Type,
		Frequency:    current.Frequency,
		DueDate:      NextDueDate(current.DueDate, current.Frequency),
		Status:       StatusNotCompleted,
	}
	if err := tx.Create(&successor).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	current.Status = StatusCompleted
	return &current, &successor, nil
}

// DeleteReminder removes the reminder permanently and returns the deleted row.
func DeleteReminder(db *gorm.DB, id int) (*model.Reminder, error) {
	var reminder model.Reminder
	if err := db.Where("id = ?", id).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}

	result := db.Delete(&reminder)
	if result.Error != nil {
		return nil, result.Error
	}
	// The row can vanish between the read and the delete; that is still a
	// not-found to the caller.
	if result.RowsAffected == 0 {
		return nil, ErrReminderNotFound
	}
	return &reminder, nil
}

// ListReminders returns every reminder, not-completed first, newest due date
// first within each status group. status is varchar, so the lexical DESC sort
// puts "not-completed" ahead of "completed".
func ListReminders(db *gorm.DB) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := db.Order("status DESC, due_date DESC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// NextDueDate adds a whole number of calendar months to a due date. When the
// day of month does not exist in the target month it clamps to that month's
// last day (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year).
func NextDueDate(d time.Time, months int) time.Time {
	year, month, day := d.Date()
	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
