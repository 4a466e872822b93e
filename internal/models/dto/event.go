package dto

import (
	"strings"
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

type Event struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Capacity    int        `json:"capacity"`
	ImageURL    string     `json:"imageUrl"`
	LocationID  *uint      `json:"locationId"`
	ArtistID    *uint      `json:"artistId"`
}

func (e *Event) Sanitize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Currency = strings.ToUpper(strings.TrimSpace(e.Currency))
	e.ImageURL = strings.TrimSpace(e.ImageURL)
}

func (e *Event) ToEntity() *models.Event {
	event := &models.Event{
		Title:       e.Title,
		Description: e.Description,
		Price:       e.Price,
		Currency:    e.Currency,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Capacity:    e.Capacity,
		ImageURL:    e.ImageURL,
		LocationID:  e.LocationID,
		ArtistID:    e.ArtistID,
	}
	event.Sanitize()
	return event
}
