package models

import "time"

type TriggerType string

const (
	TriggerOneHourBefore    TriggerType = "ONE_HOUR_BEFORE"
	TriggerTenMinutesBefore TriggerType = "TEN_MINUTES_BEFORE"
)

// Offset returns how long before the event start the trigger fires.
func (t TriggerType) Offset() time.Duration {
	switch t {
	case TriggerOneHourBefore:
		return time.Hour
	case TriggerTenMinutesBefore:
		return 10 * time.Minute
	default:
		return 0
	}
}

var ReminderTriggers = []TriggerType{TriggerOneHourBefore, TriggerTenMinutesBefore}

type ScheduledNotification struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	EventID      uint        `json:"eventId" gorm:"not null;index"`
	Event        *Event      `json:"event,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	TriggerType  TriggerType `json:"triggerType" gorm:"type:varchar(32);not null"`
	ScheduledFor time.Time   `json:"scheduledFor" gorm:"not null;index:idx_scheduled_due,priority:2"`
	IsSent       bool        `json:"isSent" gorm:"not null;default:false;index:idx_scheduled_due,priority:1"`
	SentAt       *time.Time  `json:"sentAt"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// BuildReminders derives the reminders fired before an event starting at start.
func BuildReminders(eventID uint, start time.Time) []ScheduledNotification {
	reminders := make([]ScheduledNotification, 0, len(ReminderTriggers))
	for _, trigger := range ReminderTriggers {
		reminders = append(reminders, ScheduledNotification{
			EventID:      eventID,
			TriggerType:  trigger,
			ScheduledFor: start.Add(-trigger.Offset()),
		})
	}
	return reminders
}
