package models

import (
	"fmt"
	"strings"
	"time"
)

// Stand is an exhibitor booth, optionally pinned to a location.
type Stand struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Exhibitor   string    `json:"exhibitor"`
	LocationID  *uint     `json:"locationId" gorm:"index"`
	Location    *Location `json:"location,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Stand) SetID(id uint) { s.ID = id }

func (s *Stand) Sanitize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Exhibitor = strings.TrimSpace(s.Exhibitor)
}

func (s *Stand) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Price < 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}
