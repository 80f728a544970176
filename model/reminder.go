package model

import (
	"time"
)

// Reminder is a recurring compliance document obligation. A completed row is
// never mutated again; completing it inserts a successor row instead.
type Reminder struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         *string   `gorm:"column:name;type:varchar(255)" json:"name"`
	FacilityName string    `gorm:"column:facility_name;type:varchar(255);not null" json:"facility_name"`
	DocumentType string    `gorm:"column:document_type;type:varchar(64);not null" json:"document_type"`
	Type         string    `gorm:"column:type;type:varchar(32);not null" json:"type"`
	Frequency    int       `gorm:"column:frequency;not null" json:"frequency"`
	DueDate      time.Time `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Status       string    `gorm:"column:status;type:varchar(20);default:'not-completed';not null" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}
