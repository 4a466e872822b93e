package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClaudeMKA/Pulse-sub001/internal/metrics"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

type NotificationService struct {
	Repo           NotificationRepo
	Participations ParticipationRepo
}

func NewNotificationService(repo NotificationRepo, participations ParticipationRepo) *NotificationService {
	return &NotificationService{
		Repo:           repo,
		Participations: participations,
	}
}

func (s *NotificationService) Notify(ctx context.Context, userID uint, kind models.NotificationType, title, message string) error {
	if !kind.IsValid() {
		return validationError(fmt.Errorf("invalid notification type: %s", kind))
	}
	notification := &models.Notification{
		UserID:  userID,
		Title:   strings.TrimSpace(title),
		Message: strings.TrimSpace(message),
		Type:    kind,
	}
	if err := s.Repo.Create(ctx, notification); err != nil {
		return err
	}
	metrics.NotificationsCreatedTotal.WithLabelValues(string(kind)).Inc()
	return nil
}

// NotifyEventParticipants sends the same notification to every user who paid for the event.
func (s *NotificationService) NotifyEventParticipants(ctx context.Context, eventID uint, kind models.NotificationType, title, message string) (int, error) {
	userIDs, err := s.Participations.PaidUserIDs(ctx, eventID)
	if err != nil {
		return 0, err
	}
	notifications := make([]models.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, models.Notification{
			UserID:  userID,
			Title:   title,
			Message: message,
			Type:    kind,
		})
	}
	if err := s.Repo.CreateBatch(ctx, notifications); err != nil {
		return 0, err
	}
	metrics.NotificationsCreatedTotal.WithLabelValues(string(kind)).Add(float64(len(notifications)))
	return len(notifications), nil
}

func (s *NotificationService) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifications, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint) error {
	if err := s.Repo.MarkRead(ctx, id, userID); err != nil {
		return notFound(err, "notification")
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.Repo.MarkAllRead(ctx, userID)
}
