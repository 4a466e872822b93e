package models

import (
	"fmt"
	"strings"
	"time"
)

type Location struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address" gorm:"not null"`
	City      string    `json:"city"`
	Capacity  int       `json:"capacity"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Location) SetID(id uint) { l.ID = id }

func (l *Location) Sanitize() {
	l.Name = strings.TrimSpace(l.Name)
	l.Address = strings.TrimSpace(l.Address)
	l.City = strings.TrimSpace(l.City)
}

func (l *Location) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if l.Address == "" {
		return fmt.Errorf("address is required")
	}
	if l.Capacity < 0 {
		return fmt.Errorf("capacity must be positive")
	}
	if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("invalid coordinates")
	}
	return nil
}
