package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ClaudeMKA/Pulse-sub001/internal/auth"
	"github.com/ClaudeMKA/Pulse-sub001/internal/handlers"
	"github.com/ClaudeMKA/Pulse-sub001/internal/middleware"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service/mocks"
)

var testManager = auth.NewManager("test-secret", time.Hour)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func bearer(t *testing.T, user *models.User) string {
	t.Helper()
	tok, _, err := testManager.Issue(user)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(r http.Handler, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func artistRouter(repo *mocks.MockResourceRepo[models.Artist]) *gin.Engine {
	h := handlers.NewResourceHandler[models.Artist](service.NewResourceService[models.Artist]("artists", repo, nil))
	r := newRouter()
	r.GET("/artists", h.List)
	r.GET("/artists/:id", h.Get)
	r.POST("/artists", h.Create)
	r.PUT("/artists/:id", h.Update)
	r.DELETE("/artists/:id", h.Delete)
	return r
}

func TestResourceHandler_NonNumericID(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)
	r := artistRouter(repo)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doJSON(r, method, "/artists/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, method)
		assert.Equal(t, "invalid id", errorBody(t, rec))
	}
}

func TestResourceHandler_GetNotFound(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)
	repo.EXPECT().GetByID(mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound).Once()

	rec := doJSON(artistRouter(repo), http.MethodGet, "/artists/42", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResourceHandler_CreateValidation(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)

	rec := doJSON(artistRouter(repo), http.MethodPost, "/artists", map[string]string{"name": "  "}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec), "name is required")
}

func TestResourceHandler_Create(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)
	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(a *models.Artist) bool { return a.Name == "Air" })).
		RunAndReturn(func(_ context.Context, a *models.Artist) error {
			a.ID = 5
			return nil
		}).
		Once()

	rec := doJSON(artistRouter(repo), http.MethodPost, "/artists", map[string]string{"name": " Air ", "genre": "electro"}, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Artist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, "Air", got.Name)
}

func TestResourceHandler_CreateIgnoresClientID(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)
	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(a *models.Artist) bool { return a.ID == 0 && a.Name == "Air" })).
		RunAndReturn(func(_ context.Context, a *models.Artist) error {
			a.ID = 6
			return nil
		}).
		Once()

	rec := doJSON(artistRouter(repo), http.MethodPost, "/artists", map[string]interface{}{"id": 99, "name": "Air"}, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Artist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(6), got.ID)
}

func TestResourceHandler_UpdateIgnoresBodyID(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)
	repo.EXPECT().
		GetByID(mock.Anything, uint(5)).
		Return(&models.Artist{ID: 5, Name: "Air"}, nil).
		Once()
	repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(a *models.Artist) bool { return a.ID == 5 }), uint(5)).
		Return(nil).
		Once()

	rec := doJSON(artistRouter(repo), http.MethodPut, "/artists/5", map[string]interface{}{"id": 99}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResourceHandler_UpdateKeepsOmittedFields(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)
	repo.EXPECT().
		GetByID(mock.Anything, uint(5)).
		Return(&models.Artist{ID: 5, Name: "Air", Genre: "electro"}, nil).
		Once()
	repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(a *models.Artist) bool {
			return a.Name == "Air" && a.Genre == "ambient"
		}), uint(5)).
		Return(nil).
		Once()

	rec := doJSON(artistRouter(repo), http.MethodPut, "/artists/5", map[string]string{"genre": "ambient"}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResourceHandler_InternalErrorIsHidden(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.Artist](t)
	repo.EXPECT().GetAll(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rec := doJSON(artistRouter(repo), http.MethodGet, "/artists", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", errorBody(t, rec))
}

func TestContactHandler_CreateForcesNewStatus(t *testing.T) {
	repo := mocks.NewMockResourceRepo[models.ContactMessage](t)
	h := handlers.NewContactHandler(service.NewResourceService[models.ContactMessage]("contacts", repo, nil))
	r := newRouter()
	r.POST("/contact", h.Create)

	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(m *models.ContactMessage) bool {
			return m.ID == 0 && m.Status == models.ContactStatusNew
		})).
		Return(nil).
		Once()

	rec := doJSON(r, http.MethodPost, "/contact", map[string]interface{}{
		"id":      99,
		"name":    "Ana",
		"email":   "ana@example.com",
		"message": "Hello",
		"status":  "ARCHIVED",
	}, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestEventHandler_UserEventsForbidden(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	participations := mocks.NewMockParticipationRepo(t)
	h := handlers.NewEventHandler(service.NewEventService(events, participations))
	r := newRouter()
	r.GET("/users/:id/events", middleware.RequireSession(testManager), h.UserEvents)

	rec := doJSON(r, http.MethodGet, "/users/8/events", nil, bearer(t, &models.User{ID: 7, Role: models.RoleUser}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEventHandler_UserEventsAdmin(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	participations := mocks.NewMockParticipationRepo(t)
	h := handlers.NewEventHandler(service.NewEventService(events, participations))
	r := newRouter()
	r.GET("/users/:id/events", middleware.RequireSession(testManager), h.UserEvents)

	participations.EXPECT().
		ListByUser(mock.Anything, uint(8)).
		Return([]models.Participation{{ID: 1, UserID: 8, EventID: 3, PaymentStatus: models.StatusPaid}}, nil).
		Once()

	rec := doJSON(r, http.MethodGet, "/users/8/events", nil, bearer(t, &models.User{ID: 1, Role: models.RoleAdmin}))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Participation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestEventHandler_ParticipantsBadID(t *testing.T) {
	h := handlers.NewEventHandler(service.NewEventService(mocks.NewMockEventRepo(t), mocks.NewMockParticipationRepo(t)))
	r := newRouter()
	r.GET("/events/:id/participants", h.Participants)

	rec := doJSON(r, http.MethodGet, "/events/NaN/participants", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
