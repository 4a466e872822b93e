package posgrest

import (
	"context"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"gorm.io/gorm"
)

// EventRepository keeps events and their reminders consistent inside one transaction.
type EventRepository struct {
	*repository[models.Event]
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{New[models.Event](db)}
}

func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Artist").
		Order("start_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Artist").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateWithReminders inserts the event and the reminders derived from its start date.
func (r *EventRepository) CreateWithReminders(ctx context.Context, event *models.Event) ([]models.ScheduledNotification, error) {
	var reminders []models.ScheduledNotification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Location", "Artist").Create(event).Error; err != nil {
			return err
		}
		reminders = models.BuildReminders(event.ID, event.StartDate)
		return tx.Create(&reminders).Error
	})
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// UpdateWithReminders updates the event and, when reschedule is set, moves its
// unsent reminders to the new start date. Reminders already sent are left alone.
func (r *EventRepository) UpdateWithReminders(ctx context.Context, event *models.Event, id uint, reschedule bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(event).
			Where("id = ?", id).
			Select("*").
			Omit("id", "created_at", "Location", "Artist").
			Updates(event)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if !reschedule {
			return nil
		}

		var sent []models.TriggerType
		if err := tx.Model(&models.ScheduledNotification{}).
			Where("event_id = ? AND is_sent = ?", id, true).
			Pluck("trigger_type", &sent).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ? AND is_sent = ?", id, false).
			Delete(&models.ScheduledNotification{}).Error; err != nil {
			return err
		}

		done := make(map[models.TriggerType]bool, len(sent))
		for _, t := range sent {
			done[t] = true
		}
		var pending []models.ScheduledNotification
		for _, reminder := range models.BuildReminders(id, event.StartDate) {
			if !done[reminder.TriggerType] {
				pending = append(pending, reminder)
			}
		}
		if len(pending) == 0 {
			return nil
		}
		return tx.Create(&pending).Error
	})
}

// Delete removes the event together with its reminders.
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.ScheduledNotification{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
