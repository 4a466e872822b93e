package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/gateway"
	"github.com/ClaudeMKA/Pulse-sub001/internal/metrics"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models/dto"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PaymentService issues payment intents for paid events and reconciles
// participations from the gateway's webhook notifications.
type PaymentService struct {
	Events         EventRepo
	Participations ParticipationRepo
	WebhookEvents  WebhookEventRepo
	Gateway        PaymentGateway
	Notifier       Notifier
	Publisher      Publisher
}

func NewPaymentService(
	events EventRepo,
	participations ParticipationRepo,
	webhookEvents WebhookEventRepo,
	gw PaymentGateway,
	notifier Notifier,
	publisher Publisher,
) *PaymentService {
	return &PaymentService{
		Events:         events,
		Participations: participations,
		WebhookEvents:  webhookEvents,
		Gateway:        gw,
		Notifier:       notifier,
		Publisher:      publisher,
	}
}

// CreatePaymentIntent starts (or restarts) the payment of userID for an event.
//
// A participation that is still PENDING or that FAILED is reused: a new intent
// is issued and its id overwrites the stored one. A PAID participation is
// rejected with ErrAlreadyPaid.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, userID uint, req dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if req.EventID == 0 {
		return nil, validationError(errors.New("eventId is required"))
	}

	event, err := s.Events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, notFound(err, "event")
	}
	if event.IsFree() {
		return nil, ErrFreeEvent
	}

	existing, err := s.Participations.FindByUserAndEvent(ctx, userID, event.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.PaymentStatus == models.StatusPaid {
		return nil, ErrAlreadyPaid
	}

	participation := existing
	if participation == nil {
		participation = &models.Participation{
			UserID:        userID,
			EventID:       event.ID,
			PaymentStatus: models.StatusPending,
			AmountPaid:    event.Price,
		}
		if err := participation.Validate(); err != nil {
			return nil, validationError(err)
		}
	}

	metadata := map[string]string{
		"eventId": strconv.FormatUint(uint64(event.ID), 10),
		"userId":  strconv.FormatUint(uint64(userID), 10),
	}
	if existing != nil {
		metadata["participationId"] = strconv.FormatUint(uint64(existing.ID), 10)
	}

	intent, err := s.Gateway.CreatePaymentIntent(ctx, gateway.IntentRequest{
		Amount:   event.AmountMinor(),
		Currency: event.Currency,
		Metadata: metadata,
	})
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.Participations.ResetIntent(ctx, participation.ID, intent.ID, event.Price); err != nil {
			return nil, err
		}
		participation.PaymentIntentID = intent.ID
		participation.PaymentStatus = models.StatusPending
		participation.AmountPaid = event.Price
	} else {
		participation.PaymentIntentID = intent.ID
		if err := s.Participations.Create(ctx, participation); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, models.ParticipationPendingTopic, participation, "")

	return &dto.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// HandleWebhook verifies and applies a gateway notification. The event id is
// claimed in the same transaction that updates the participations, so a
// gateway event id that was already processed is acknowledged without side
// effects.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookAck, error) {
	event, err := s.Gateway.ParseWebhook(payload, signature)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("unknown", "rejected").Inc()
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignature, err.Error())
	}

	var status models.PaymentStatus
	switch event.Type {
	case gateway.EventPaymentSucceeded:
		status = models.StatusPaid
	case gateway.EventPaymentFailed:
		status = models.StatusFailed
	default:
		logrus.WithField("type", event.Type).Info("unhandled webhook event type")
		if event.ID != "" {
			if err := s.WebhookEvents.Record(ctx, processedEvent(event)); err != nil {
				logrus.WithError(err).WithField("event_id", event.ID).Error("error recording processed webhook event")
			}
		}
		metrics.WebhookEventsTotal.WithLabelValues(event.Type, "ignored").Inc()
		return &dto.WebhookAck{Received: true}, nil
	}

	claimed, affected, err := s.applyStatus(ctx, event, status)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues(event.Type, "error").Inc()
		return nil, fmt.Errorf("error updating participations: %w", err)
	}
	if !claimed {
		logrus.WithField("event_id", event.ID).Info("webhook event already processed")
		metrics.WebhookEventsTotal.WithLabelValues(event.Type, "duplicate").Inc()
		return &dto.WebhookAck{Received: true, Duplicate: true}, nil
	}

	if err := s.reconcile(ctx, event, status, affected); err != nil {
		// Let the gateway redeliver. The status update is idempotent.
		if event.ID != "" {
			if rerr := s.WebhookEvents.Release(ctx, event.ID); rerr != nil {
				logrus.WithError(rerr).WithField("event_id", event.ID).Error("error releasing webhook event")
			}
		}
		metrics.WebhookEventsTotal.WithLabelValues(event.Type, "error").Inc()
		return nil, err
	}

	metrics.WebhookEventsTotal.WithLabelValues(event.Type, "processed").Inc()
	return &dto.WebhookAck{Received: true}, nil
}

func (s *PaymentService) applyStatus(ctx context.Context, event *gateway.WebhookEvent, status models.PaymentStatus) (bool, int64, error) {
	if event.ID != "" {
		return s.WebhookEvents.ApplyPaymentStatus(ctx, processedEvent(event), event.IntentID, status)
	}
	if event.IntentID == "" {
		return true, 0, nil
	}
	affected, err := s.Participations.UpdateStatusByIntent(ctx, event.IntentID, status)
	return true, affected, err
}

func processedEvent(event *gateway.WebhookEvent) *models.ProcessedWebhookEvent {
	return &models.ProcessedWebhookEvent{
		ID:          event.ID,
		Type:        event.Type,
		ProcessedAt: time.Now().UTC(),
	}
}

func (s *PaymentService) reconcile(ctx context.Context, event *gateway.WebhookEvent, status models.PaymentStatus, affected int64) error {
	log := logrus.WithFields(logrus.Fields{
		"intent_id": event.IntentID,
		"status":    status,
	})
	if event.IntentID == "" {
		log.Warn("webhook event without payment intent id")
		return nil
	}
	if affected == 0 {
		log.Warn("no participation matches payment intent")
		return nil
	}

	participation, err := s.Participations.FirstByIntent(ctx, event.IntentID)
	if err != nil {
		return fmt.Errorf("error loading participation: %w", err)
	}
	participation.PaymentStatus = status

	title := "your event"
	if participation.Event != nil && participation.Event.Title != "" {
		title = fmt.Sprintf("%q", participation.Event.Title)
	}

	var (
		kind    models.NotificationType
		subject string
		message string
		topic   string
	)
	if status == models.StatusPaid {
		kind = models.NotificationSuccess
		subject = "Payment confirmed"
		message = fmt.Sprintf("Your payment for %s has been confirmed. Your spot is booked.", title)
		topic = models.ParticipationPaidTopic
	} else {
		kind = models.NotificationError
		subject = "Payment failed"
		message = fmt.Sprintf("Your payment for %s could not be completed.", title)
		if event.FailureMessage != "" {
			message = fmt.Sprintf("%s Reason: %s", message, event.FailureMessage)
		}
		topic = models.ParticipationFailedTopic
	}

	if err := s.Notifier.Notify(ctx, participation.UserID, kind, subject, message); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}

	log.WithField("updated", affected).Info("participation reconciled")
	s.publish(ctx, topic, participation, event.FailureMessage)
	return nil
}

// publish is best effort: the database is the source of truth for participations.
func (s *PaymentService) publish(ctx context.Context, topic string, p *models.Participation, reason string) {
	if s.Publisher == nil {
		return
	}
	evt := models.ParticipationEvent{
		ID:              uuid.New().String(),
		ParticipationID: p.ID,
		UserID:          p.UserID,
		EventID:         p.EventID,
		PaymentIntentID: p.PaymentIntentID,
		Status:          string(p.PaymentStatus),
		Amount:          p.AmountPaid,
		Reason:          reason,
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, topic, evt); err != nil {
		logrus.WithError(err).WithField("topic", topic).Error("error publishing participation event")
	}
}
