package models

import "time"

const (
	ParticipationPendingTopic = "participations.pending"
	ParticipationPaidTopic    = "participations.paid"
	ParticipationFailedTopic  = "participations.failed"
	EventRemindersTopic       = "events.reminders"
	PulseDLQTopic             = "pulse.dlq"
)

type ParticipationEvent struct {
	ID              string    `json:"id"`
	ParticipationID uint      `json:"participation_id"`
	UserID          uint      `json:"user_id"`
	EventID         uint      `json:"event_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	Reason          string    `json:"reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type EventReminder struct {
	ID             string    `json:"id"`
	ReminderID     uint      `json:"reminder_id"`
	EventID        uint      `json:"event_id"`
	EventTitle     string    `json:"event_title"`
	TriggerType    string    `json:"trigger_type"`
	EventStartDate time.Time `json:"event_start_date"`
	ScheduledFor   time.Time `json:"scheduled_for"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
