package service_test

import (
	"context"
	"testing"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotificationService_Notify(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	svc := service.NewNotificationService(repo, mocks.NewMockParticipationRepo(t))
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.UserID == 9 && n.Type == models.NotificationSuccess && n.Title == "Payment confirmed" && !n.IsRead
		})).
		Return(nil).
		Once()

	err := svc.Notify(ctx, 9, models.NotificationSuccess, "Payment confirmed", "ok")

	assert.NoError(t, err)
}

func TestNotificationService_Notify_InvalidType(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	svc := service.NewNotificationService(repo, mocks.NewMockParticipationRepo(t))

	err := svc.Notify(context.Background(), 9, "LOUD", "t", "m")

	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestNotificationService_NotifyEventParticipants(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	participations := mocks.NewMockParticipationRepo(t)
	svc := service.NewNotificationService(repo, participations)
	ctx := context.Background()

	participations.EXPECT().PaidUserIDs(ctx, uint(4)).Return([]uint{9, 12}, nil).Once()
	repo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(ns []models.Notification) bool {
			return len(ns) == 2 && ns[0].UserID == 9 && ns[1].UserID == 12 && ns[0].Type == models.NotificationInfo
		})).
		Return(nil).
		Once()

	count, err := svc.NotifyEventParticipants(ctx, 4, models.NotificationInfo, "Reminder", "Jazz starts in 1 hour.")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_MarkRead_NotOwned(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	svc := service.NewNotificationService(repo, mocks.NewMockParticipationRepo(t))
	ctx := context.Background()

	repo.EXPECT().MarkRead(ctx, uint(3), uint(9)).Return(gorm.ErrRecordNotFound).Once()

	err := svc.MarkRead(ctx, 3, 9)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestNotificationService_List_EmptyIsNotNil(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	svc := service.NewNotificationService(repo, mocks.NewMockParticipationRepo(t))
	ctx := context.Background()

	repo.EXPECT().ListByUser(ctx, uint(9)).Return(nil, nil).Once()

	notifications, err := svc.List(ctx, 9)

	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}
