package models

import "time"

// ProcessedWebhookEvent records a gateway event id once it has been handled.
type ProcessedWebhookEvent struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	Type        string    `json:"type" gorm:"not null"`
	ProcessedAt time.Time `json:"processedAt" gorm:"not null"`
}
