package models

import "time"

// Immeuble: a building whose units the reservations reference by number.
type Immeuble struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Name             string  `gorm:"not null;index" json:"name"`
	Address          string  `json:"address"`
	Type             string  `json:"type"` // Appartement, Villa, Local Commercial, Bureau
	Commercial       string  `json:"commercial"`
	Price            float64 `json:"price"`
	DateConstruction string  `json:"dateConstruction"` // YYYY-MM-DD
	AvailableUnits   int     `json:"availableUnits"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
