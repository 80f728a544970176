package model

import (
	"time"
)

// MenuDay is one day of the facility meal plan, stored as JSON.
type MenuDay struct {
	Day       string   `json:"day"`
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// Contact is one way to reach a facility (Phone, Email or Fax).
type Contact struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Facility struct {
	ID              int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Logo            string    `gorm:"column:logo;type:varchar(512)" json:"logo"`
	Address         string    `gorm:"column:address;type:varchar(255)" json:"address"`
	City            string    `gorm:"column:city;type:varchar(128)" json:"city"`
	State           string    `gorm:"column:state;type:varchar(64)" json:"state"`
	Zipcode         string    `gorm:"column:zipcode;type:varchar(16)" json:"zipcode"`
	MaxOccupancy    int       `gorm:"column:max_occupancy" json:"max_occupancy"`
	AvailableBeds   int       `gorm:"column:available_beds" json:"available_beds"`
	AboutUs         string    `gorm:"column:about_us;type:text" json:"about_us"`
	ManagerName     string    `gorm:"column:manager_name;type:varchar(255)" json:"manager_name"`
	Services        []string  `gorm:"column:services;serializer:json;type:text" json:"services"`
	DailyActivities []string  `gorm:"column:daily_activities;serializer:json;type:text" json:"daily_activities"`
	Pictures        []string  `gorm:"column:pictures;serializer:json;type:text" json:"pictures"`
	Menu            []MenuDay `gorm:"column:menu;serializer:json;type:text" json:"menu"`
	Contacts        []Contact `gorm:"column:contacts;serializer:json;type:text" json:"contacts"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Facility) TableName() string {
	return "facilities"
}
