package service

import (
	"context"
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/gateway"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Cache is a key/value store holding JSON-serializable values.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

type ResourceRepo[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, entity *T, id uint) error
	Delete(ctx context.Context, id uint) error
}

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type EventRepo interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	CreateWithReminders(ctx context.Context, event *models.Event) ([]models.ScheduledNotification, error)
	UpdateWithReminders(ctx context.Context, event *models.Event, id uint, reschedule bool) error
	Delete(ctx context.Context, id uint) error
}

type ParticipationRepo interface {
	Create(ctx context.Context, participation *models.Participation) error
	FindByUserAndEvent(ctx context.Context, userID, eventID uint) (*models.Participation, error)
	ResetIntent(ctx context.Context, id uint, intentID string, amount float64) error
	UpdateStatusByIntent(ctx context.Context, intentID string, status models.PaymentStatus) (int64, error)
	FirstByIntent(ctx context.Context, intentID string) (*models.Participation, error)
	ListByEvent(ctx context.Context, eventID uint) ([]models.Participation, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Participation, error)
	PaidUserIDs(ctx context.Context, eventID uint) ([]uint, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, notification *models.Notification) error
	CreateBatch(ctx context.Context, notifications []models.Notification) error
	ListByUser(ctx context.Context, userID uint) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

type WebhookEventRepo interface {
	ApplyPaymentStatus(ctx context.Context, event *models.ProcessedWebhookEvent, intentID string, status models.PaymentStatus) (bool, int64, error)
	Record(ctx context.Context, event *models.ProcessedWebhookEvent) error
	Release(ctx context.Context, id string) error
}

type ReminderStore interface {
	Due(ctx context.Context, now time.Time) ([]models.ScheduledNotification, error)
	MarkSent(ctx context.Context, id uint, at time.Time) error
}

// PaymentGateway is the card processor issuing payment intents and signing webhooks.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req gateway.IntentRequest) (*gateway.Intent, error)
	ParseWebhook(payload []byte, signature string) (*gateway.WebhookEvent, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uint, kind models.NotificationType, title, message string) error
}

type TokenIssuer interface {
	Issue(user *models.User) (string, time.Time, error)
}
