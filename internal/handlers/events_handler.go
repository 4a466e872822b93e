package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ClaudeMKA/Pulse-sub001/internal/metrics"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
)

const reminderTitle = "Event reminder"

type ParticipantNotifier interface {
	NotifyEventParticipants(ctx context.Context, eventID uint, kind models.NotificationType, title, message string) (int, error)
}

// EventsHandler consumes the bus topics the service publishes to itself.
type EventsHandler struct {
	Notifications ParticipantNotifier
}

func NewEventsHandler(n ParticipantNotifier) *EventsHandler {
	return &EventsHandler{Notifications: n}
}

func (h *EventsHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.EventRemindersTopic:
		var evt models.EventReminder
		if err := json.Unmarshal(value, &evt); err != nil {
			logrus.Errorf("Error parsing event reminder %s", err.Error())
			return fmt.Errorf("error parsing event reminder %w", err)
		}
		message := service.ReminderMessage(evt.EventTitle, models.TriggerType(evt.TriggerType))
		sent, err := h.Notifications.NotifyEventParticipants(ctx, evt.EventID, models.NotificationInfo, reminderTitle, message)
		if err != nil {
			return fmt.Errorf("error notifying participants of event %d %w", evt.EventID, err)
		}
		logrus.WithFields(logrus.Fields{
			"event_id":   evt.EventID,
			"trigger":    evt.TriggerType,
			"recipients": sent,
		}).Info("reminder fanned out")

	case models.ParticipationPendingTopic, models.ParticipationPaidTopic, models.ParticipationFailedTopic:
		var evt models.ParticipationEvent
		if err := json.Unmarshal(value, &evt); err != nil {
			logrus.Errorf("Error parsing participation event %s", err.Error())
			return fmt.Errorf("error parsing participation event %w", err)
		}
		status := evt.Status
		if status == "" {
			status = "unknown"
		}
		metrics.ParticipationsTotal.WithLabelValues(status).Inc()
		metrics.PaymentAmounts.WithLabelValues(status).Observe(evt.Amount)

	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
	return nil
}
