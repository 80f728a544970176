package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"carehaven/model"

	"gorm.io/gorm"
)

// ErrDigestDispatch marks a digest that was built but could not be delivered.
var ErrDigestDispatch = errors.New("failed to dispatch reminder digest")

// DigestReminder is one display row of the due-soon email.
type DigestReminder struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	FacilityName string `json:"facility_name"`
	DocumentType string `json:"document_type"`
	DueDate      string `json:"due_date"`
}

// Digest partitions due-soon reminders into the two lookahead windows:
// Upcoming is due exactly five days out, Future six to fifteen days out.
type Digest struct {
	Upcoming []DigestReminder
	Future   []DigestReminder
}

// RemindersDueBetween fetches reminders whose due date falls in [start, end],
// earliest first.
func RemindersDueBetween(db *gorm.DB, start, end time.Time) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := db.Where("due_date BETWEEN ? AND ?", start, end).
		Order("due_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// BuildDigest partitions and formats reminders relative to today. Reminders
// outside both windows are dropped. No state is mutated.
func BuildDigest(today time.Time, reminders []model.Reminder) Digest {
	todayDate := truncateToDay(today)
	upcomingDate := todayDate.AddDate(0, 0, 5)
	futureStart := todayDate.AddDate(0, 0, 6)
	futureEnd := todayDate.AddDate(0, 0, 15)

	var digest Digest
	for _, r := range reminders {
		due := truncateToDay(r.DueDate)
		switch {
		case due.Equal(upcomingDate):
			digest.Upcoming = append(digest.Upcoming, FormatReminder(r))
		case !due.Before(futureStart) && !due.After(futureEnd):
			digest.Future = append(digest.Future, FormatReminder(r))
		}
	}
	return digest
}

// FormatReminder turns a reminder row into its display record: capitalized
// type, "N/A" when there is no subject name, document type with the hyphens
// turned into spaces and a M/D/YYYY due date.
func FormatReminder(r model.Reminder) DigestReminder {
	name := "N/A"
	if r.Name != nil && *r.Name != "" {
		name = *r.Name
	}
	return DigestReminder{
		Type:         capitalize(r.Type),
		Name:         name,
		FacilityName: r.FacilityName,
		DocumentType: strings.ReplaceAll(r.DocumentType, "-", " "),
		DueDate:      fmt.Sprintf("%d/%d/%d", r.DueDate.Month(), r.DueDate.Day(), r.DueDate.Year()),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
