package service

import (
	"context"
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/metrics"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ReminderService fires due event reminders. Each reminder is dispatched at
// most once: it is marked sent right after a successful dispatch, and a failed
// dispatch leaves it for the next run.
type ReminderService struct {
	Store     ReminderStore
	Publisher Publisher
	Now       func() time.Time
}

func NewReminderService(store ReminderStore, publisher Publisher) *ReminderService {
	return &ReminderService{
		Store:     store,
		Publisher: publisher,
		Now:       time.Now,
	}
}

func (s *ReminderService) DispatchDue(ctx context.Context) (int, error) {
	now := s.Now()
	reminders, err := s.Store.Due(ctx, now)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range reminders {
		reminder := &reminders[i]
		log := logrus.WithFields(logrus.Fields{
			"reminder_id": reminder.ID,
			"event_id":    reminder.EventID,
			"trigger":     reminder.TriggerType,
		})

		if err := s.dispatch(ctx, reminder); err != nil {
			log.WithError(err).Error("error dispatching reminder")
			continue
		}
		if err := s.Store.MarkSent(ctx, reminder.ID, now); err != nil {
			log.WithError(err).Error("error marking reminder sent")
			continue
		}
		metrics.RemindersDispatchedTotal.WithLabelValues(string(reminder.TriggerType)).Inc()
		sent++
	}
	return sent, nil
}

func (s *ReminderService) dispatch(ctx context.Context, reminder *models.ScheduledNotification) error {
	msg := models.EventReminder{
		ID:           uuid.New().String(),
		ReminderID:   reminder.ID,
		EventID:      reminder.EventID,
		TriggerType:  string(reminder.TriggerType),
		ScheduledFor: reminder.ScheduledFor,
	}
	if reminder.Event != nil {
		msg.EventTitle = reminder.Event.Title
		msg.EventStartDate = reminder.Event.StartDate
	}

	logrus.WithFields(logrus.Fields{
		"event_id": reminder.EventID,
		"title":    msg.EventTitle,
		"trigger":  reminder.TriggerType,
	}).Info("notifying all users of upcoming event")

	return s.Publisher.Publish(ctx, models.EventRemindersTopic, msg)
}

// ReminderMessage renders the text shown to participants for a reminder.
func ReminderMessage(title string, trigger models.TriggerType) string {
	when := "soon"
	switch trigger {
	case models.TriggerOneHourBefore:
		when = "in 1 hour"
	case models.TriggerTenMinutesBefore:
		when = "in 10 minutes"
	}
	if title == "" {
		return "Your event starts " + when + "."
	}
	return title + " starts " + when + "."
}
