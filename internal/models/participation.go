package models

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	StatusPending PaymentStatus = "PENDING"
	StatusPaid    PaymentStatus = "PAID"
	StatusFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	default:
		return false
	}
}

// Participation links a user to an event through its payment lifecycle.
// One row per (user, event); retries reuse the row.
type Participation struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"userId" gorm:"not null;uniqueIndex:idx_participation_user_event"`
	User            *User         `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	EventID         uint          `json:"eventId" gorm:"not null;uniqueIndex:idx_participation_user_event"`
	Event           *Event        `json:"event,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	PaymentStatus   PaymentStatus `json:"paymentStatus" gorm:"type:varchar(16);not null;default:PENDING"`
	PaymentIntentID string        `json:"paymentIntentId" gorm:"index"`
	AmountPaid      float64       `json:"amountPaid"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (p *Participation) Validate() error {
	if p.UserID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if p.EventID == 0 {
		return fmt.Errorf("event ID is required")
	}
	if !p.PaymentStatus.IsValid() {
		return fmt.Errorf("invalid payment status: %s", p.PaymentStatus)
	}
	return nil
}
