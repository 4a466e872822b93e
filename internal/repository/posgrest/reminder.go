package posgrest

import (
	"context"
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Due returns the unsent reminders whose trigger time is at or before now.
func (r *ReminderRepository) Due(ctx context.Context, now time.Time) ([]models.ScheduledNotification, error) {
	var reminders []models.ScheduledNotification
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("is_sent = ? AND scheduled_for <= ?", false, now).
		Order("scheduled_for ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// MarkSent is a no-op for a reminder that was already sent.
func (r *ReminderRepository) MarkSent(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.ScheduledNotification{}).
		Where("id = ? AND is_sent = ?", id, false).
		Updates(map[string]interface{}{
			"is_sent": true,
			"sent_at": at,
		}).Error
}
