package service

import (
	"context"
	"errors"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models/dto"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EventService struct {
	Repo           EventRepo
	Participations ParticipationRepo
}

func NewEventService(repo EventRepo, participations ParticipationRepo) *EventService {
	return &EventService{
		Repo:           repo,
		Participations: participations,
	}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "event")
	}
	return event, nil
}

// Create stores the event along with its two reminders.
func (s *EventService) Create(ctx context.Context, input *dto.Event) (*models.Event, error) {
	input.Sanitize()
	event := input.ToEntity()
	if err := event.Validate(); err != nil {
		return nil, validationError(err)
	}

	reminders, err := s.Repo.CreateWithReminders(ctx, event)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"event_id":  event.ID,
		"reminders": len(reminders),
	}).Info("event created")
	return event, nil
}

// Update replaces the event fields. A moved start date reschedules the unsent reminders.
func (s *EventService) Update(ctx context.Context, id uint, input *dto.Event) (*models.Event, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "event")
	}

	input.Sanitize()
	event := input.ToEntity()
	if err := event.Validate(); err != nil {
		return nil, validationError(err)
	}

	reschedule := !existing.StartDate.Equal(event.StartDate)
	if err := s.Repo.UpdateWithReminders(ctx, event, id, reschedule); err != nil {
		return nil, notFound(err, "event")
	}

	event.ID = id
	event.CreatedAt = existing.CreatedAt
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return notFound(err, "event")
	}
	return nil
}

func (s *EventService) Participants(ctx context.Context, eventID uint) ([]dto.Participant, error) {
	if _, err := s.Repo.GetByID(ctx, eventID); err != nil {
		return nil, notFound(err, "event")
	}
	participations, err := s.Participations.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return dto.ToParticipants(participations), nil
}

// UserEvents lists the participations of userID. Only the user or an admin may read them.
func (s *EventService) UserEvents(ctx context.Context, requester *models.User, userID uint) ([]models.Participation, error) {
	if requester == nil || (requester.ID != userID && !requester.IsAdmin()) {
		return nil, ErrForbidden
	}
	participations, err := s.Participations.ListByUser(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if participations == nil {
		participations = []models.Participation{}
	}
	return participations, nil
}
