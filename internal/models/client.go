package models

import "time"

// Client entity: an acheteur/prospect managed by the back-office.
type Client struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Nom           string `gorm:"not null;index" json:"nom"`
	Prenom        string `gorm:"index" json:"prenom"`
	Telephone     string `json:"telephone"`
	Email         string `gorm:"index" json:"email"`
	Adresse       string `json:"adresse"`
	DateNaissance string `json:"dateNaissance"` // YYYY-MM-DD
	CIN           string `gorm:"index" json:"cin"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
