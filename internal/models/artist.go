package models

import (
	"fmt"
	"strings"
	"time"
)

type Artist struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Artist) SetID(id uint) { a.ID = id }

func (a *Artist) Sanitize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Genre = strings.TrimSpace(a.Genre)
	a.Website = strings.TrimSpace(a.Website)
}

func (a *Artist) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
