package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models/dto"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildReminders(t *testing.T) {
	start := time.Date(2026, 6, 21, 20, 0, 0, 0, time.UTC)

	reminders := models.BuildReminders(4, start)

	require.Len(t, reminders, 2)
	assert.Equal(t, models.TriggerOneHourBefore, reminders[0].TriggerType)
	assert.Equal(t, start.Add(-60*time.Minute), reminders[0].ScheduledFor)
	assert.Equal(t, models.TriggerTenMinutesBefore, reminders[1].TriggerType)
	assert.Equal(t, start.Add(-10*time.Minute), reminders[1].ScheduledFor)
	for _, r := range reminders {
		assert.Equal(t, uint(4), r.EventID)
		assert.False(t, r.IsSent)
	}
}

func TestEventService_Create(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := service.NewEventService(repo, mocks.NewMockParticipationRepo(t))
	ctx := context.Background()
	start := time.Date(2026, 6, 21, 20, 0, 0, 0, time.UTC)

	repo.EXPECT().
		CreateWithReminders(ctx, mock.MatchedBy(func(e *models.Event) bool {
			return e.Title == "Jazz Night" && e.Currency == "EUR" && e.StartDate.Equal(start)
		})).
		RunAndReturn(func(_ context.Context, e *models.Event) ([]models.ScheduledNotification, error) {
			e.ID = 4
			return models.BuildReminders(e.ID, e.StartDate), nil
		}).
		Once()

	event, err := svc.Create(ctx, &dto.Event{Title: "  Jazz Night ", Price: 15, StartDate: start})

	require.NoError(t, err)
	assert.Equal(t, uint(4), event.ID)
}

func TestEventService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := service.NewEventService(repo, mocks.NewMockParticipationRepo(t))
	start := time.Now().Add(48 * time.Hour)
	before := start.Add(-time.Hour)

	cases := map[string]*dto.Event{
		"missing title":       {StartDate: start},
		"negative price":      {Title: "x", Price: -1, StartDate: start},
		"missing start":       {Title: "x"},
		"end before start":    {Title: "x", StartDate: start, EndDate: &before},
		"bad currency length": {Title: "x", StartDate: start, Currency: "EURO"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
	repo.AssertNotCalled(t, "CreateWithReminders", mock.Anything, mock.Anything)
}

func TestEventService_Update_ReschedulesOnNewStart(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := service.NewEventService(repo, mocks.NewMockParticipationRepo(t))
	ctx := context.Background()
	oldStart := time.Date(2026, 6, 21, 20, 0, 0, 0, time.UTC)
	newStart := oldStart.Add(2 * time.Hour)

	repo.EXPECT().GetByID(ctx, uint(4)).Return(&models.Event{ID: 4, Title: "Jazz", StartDate: oldStart}, nil).Once()
	repo.EXPECT().UpdateWithReminders(ctx, mock.Anything, uint(4), true).Return(nil).Once()

	event, err := svc.Update(ctx, 4, &dto.Event{Title: "Jazz", StartDate: newStart})

	require.NoError(t, err)
	assert.Equal(t, uint(4), event.ID)
}

func TestEventService_Update_KeepsRemindersWhenStartUnchanged(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := service.NewEventService(repo, mocks.NewMockParticipationRepo(t))
	ctx := context.Background()
	start := time.Date(2026, 6, 21, 20, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByID(ctx, uint(4)).Return(&models.Event{ID: 4, Title: "Jazz", StartDate: start}, nil).Once()
	repo.EXPECT().UpdateWithReminders(ctx, mock.Anything, uint(4), false).Return(nil).Once()

	_, err := svc.Update(ctx, 4, &dto.Event{Title: "Jazz renamed", StartDate: start})

	require.NoError(t, err)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := service.NewEventService(repo, mocks.NewMockParticipationRepo(t))
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, uint(99)).Return(gorm.ErrRecordNotFound).Once()

	err := svc.Delete(ctx, 99)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestEventService_Participants(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	participations := mocks.NewMockParticipationRepo(t)
	svc := service.NewEventService(repo, participations)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, uint(4)).Return(&models.Event{ID: 4}, nil).Once()
	participations.EXPECT().
		ListByEvent(ctx, uint(4)).
		Return([]models.Participation{
			{ID: 1, UserID: 9, EventID: 4, PaymentStatus: models.StatusPaid, AmountPaid: 15, User: &models.User{ID: 9, Name: "Ada", Email: "ada@example.com"}},
		}, nil).
		Once()

	participants, err := svc.Participants(ctx, 4)

	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Ada", participants[0].Name)
	assert.Equal(t, models.StatusPaid, participants[0].PaymentStatus)
}

func TestEventService_UserEvents_Authorization(t *testing.T) {
	participations := mocks.NewMockParticipationRepo(t)
	svc := service.NewEventService(mocks.NewMockEventRepo(t), participations)
	ctx := context.Background()

	_, err := svc.UserEvents(ctx, &models.User{ID: 2, Role: models.RoleUser}, 9)
	assert.ErrorIs(t, err, service.ErrForbidden)

	participations.EXPECT().ListByUser(ctx, uint(9)).Return(nil, nil).Twice()

	own, err := svc.UserEvents(ctx, &models.User{ID: 9, Role: models.RoleUser}, 9)
	require.NoError(t, err)
	assert.NotNil(t, own)

	_, err = svc.UserEvents(ctx, &models.User{ID: 1, Role: models.RoleAdmin}, 9)
	require.NoError(t, err)
}
