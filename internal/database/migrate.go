package database

import (
	"gorm.io/gorm"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

// Models lists every table owned by the service, parents before children.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Artist{},
		&models.Location{},
		&models.Stand{},
		&models.Event{},
		&models.Participation{},
		&models.Notification{},
		&models.ScheduledNotification{},
		&models.ContactMessage{},
		&models.ProcessedWebhookEvent{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
