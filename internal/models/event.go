package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const DefaultCurrency = "EUR"

type Event struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	Price       float64    `json:"price" gorm:"not null;default:0"`
	Currency    string     `json:"currency" gorm:"type:varchar(3);not null;default:EUR"`
	StartDate   time.Time  `json:"startDate" gorm:"not null;index"`
	EndDate     *time.Time `json:"endDate"`
	Capacity    int        `json:"capacity"`
	ImageURL    string     `json:"imageUrl"`
	LocationID  *uint      `json:"locationId" gorm:"index"`
	Location    *Location  `json:"location,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	ArtistID    *uint      `json:"artistId" gorm:"index"`
	Artist      *Artist    `json:"artist,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsFree reports whether the event can be joined without a payment.
func (e *Event) IsFree() bool {
	return e.Price <= 0
}

// AmountMinor is the price in the currency's minor unit, as charged by the gateway.
func (e *Event) AmountMinor() int64 {
	return int64(math.Round(e.Price * 100))
}

func (e *Event) Sanitize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Currency = strings.ToUpper(strings.TrimSpace(e.Currency))
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
}

func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Price < 0 {
		return fmt.Errorf("price must be positive")
	}
	if len(e.Currency) != 3 {
		return fmt.Errorf("invalid currency: %s", e.Currency)
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("end date must be after start date")
	}
	if e.Capacity < 0 {
		return fmt.Errorf("capacity must be positive")
	}
	return nil
}
