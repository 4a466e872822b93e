package models

import (
	"fmt"
	"strings"
	"time"
)

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "NEW"
	ContactStatusRead     ContactStatus = "READ"
	ContactStatusArchived ContactStatus = "ARCHIVED"
)

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusArchived:
		return true
	default:
		return false
	}
}

type ContactMessage struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	Status    ContactStatus `json:"status" gorm:"type:varchar(16);not null;default:NEW"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (c *ContactMessage) SetID(id uint) { c.ID = id }

func (c *ContactMessage) Sanitize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = NormalizeEmail(c.Email)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
	c.Status = ContactStatus(strings.ToUpper(string(c.Status)))
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
}

func (c *ContactMessage) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	if c.Message == "" {
		return fmt.Errorf("message is required")
	}
	if !c.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", c.Status)
	}
	return nil
}
