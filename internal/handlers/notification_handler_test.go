package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/ClaudeMKA/Pulse-sub001/internal/handlers"
	"github.com/ClaudeMKA/Pulse-sub001/internal/middleware"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service/mocks"
)

func notificationRouter(t *testing.T) (*mocks.MockNotificationRepo, http.Handler) {
	repo := mocks.NewMockNotificationRepo(t)
	h := handlers.NewNotificationHandler(service.NewNotificationService(repo, mocks.NewMockParticipationRepo(t)))
	r := newRouter()
	group := r.Group("/notifications", middleware.RequireSession(testManager))
	group.GET("", h.List)
	group.PUT("/read-all", h.MarkAllRead)
	group.PUT("/:id/read", h.MarkRead)
	return repo, r
}

func TestNotificationHandler_MarkReadOtherUsersNotification(t *testing.T) {
	repo, r := notificationRouter(t)
	repo.EXPECT().MarkRead(mock.Anything, uint(12), uint(7)).Return(gorm.ErrRecordNotFound).Once()

	rec := doJSON(r, http.MethodPut, "/notifications/12/read", nil, bearer(t, &models.User{ID: 7, Role: models.RoleUser}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	repo, r := notificationRouter(t)
	repo.EXPECT().MarkAllRead(mock.Anything, uint(7)).Return(int64(3), nil).Once()

	rec := doJSON(r, http.MethodPut, "/notifications/read-all", nil, bearer(t, &models.User{ID: 7, Role: models.RoleUser}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":3}`, rec.Body.String())
}

func TestNotificationHandler_ListEmpty(t *testing.T) {
	repo, r := notificationRouter(t)
	repo.EXPECT().ListByUser(mock.Anything, uint(7)).Return(nil, nil).Once()

	rec := doJSON(r, http.MethodGet, "/notifications", nil, bearer(t, &models.User{ID: 7, Role: models.RoleUser}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
