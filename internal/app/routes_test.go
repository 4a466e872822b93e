package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClaudeMKA/Pulse-sub001/config"
	"github.com/ClaudeMKA/Pulse-sub001/internal/auth"
	"github.com/ClaudeMKA/Pulse-sub001/internal/handlers"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service/mocks"
	"github.com/ClaudeMKA/Pulse-sub001/internal/storage"
)

func testApp(t *testing.T) (*App, *auth.Manager) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewManager("routes-secret", time.Hour)
	events := mocks.NewMockEventRepo(t)
	participations := mocks.NewMockParticipationRepo(t)
	notificationService := service.NewNotificationService(mocks.NewMockNotificationRepo(t), participations)

	h := Handlers{
		Auth:          handlers.NewAuthHandler(service.NewAuthService(mocks.NewMockUserRepo(t), tokens), false),
		Artists:       handlers.NewResourceHandler[models.Artist](service.NewResourceService[models.Artist]("artists", mocks.NewMockResourceRepo[models.Artist](t), nil)),
		Locations:     handlers.NewResourceHandler[models.Location](service.NewResourceService[models.Location]("locations", mocks.NewMockResourceRepo[models.Location](t), nil)),
		Stands:        handlers.NewResourceHandler[models.Stand](service.NewResourceService[models.Stand]("stands", mocks.NewMockResourceRepo[models.Stand](t), nil)),
		Contact:       handlers.NewContactHandler(service.NewResourceService[models.ContactMessage]("contact", mocks.NewMockResourceRepo[models.ContactMessage](t), nil)),
		Events:        handlers.NewEventHandler(service.NewEventService(events, participations)),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Payments: handlers.NewPaymentHandler(service.NewPaymentService(
			events, participations, mocks.NewMockWebhookEventRepo(t), mocks.NewMockPaymentGateway(t), notificationService, mocks.NewMockPublisher(t))),
		Upload: handlers.NewUploadHandler(storage.NewUploader(t.TempDir(), 1<<20), 1<<20),
		Health: handlers.NewHealthHandler(nil),
	}

	a := &App{
		config: &config.Config{APP: config.APP{PublicRateLimit: 100, PublicBurst: 100}},
		Router: gin.New(),
	}
	a.RegisterRoutes(h, tokens)
	return a, tokens
}

func serve(a *App, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRoutes_Access(t *testing.T) {
	a, tokens := testApp(t)
	userToken, _, err := tokens.Issue(&models.User{ID: 2, Role: models.RoleUser})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"NaN id", http.MethodGet, "/api/artists/NaN", "", http.StatusBadRequest},
		{"admin write without session", http.MethodPost, "/api/artists", "", http.StatusUnauthorized},
		{"admin write as user", http.MethodDelete, "/api/events/1", userToken, http.StatusForbidden},
		{"participants as user", http.MethodGet, "/api/events/1/participants", userToken, http.StatusForbidden},
		{"contact inbox as user", http.MethodGet, "/api/contact", userToken, http.StatusForbidden},
		{"upload without session", http.MethodPost, "/api/upload", "", http.StatusUnauthorized},
		{"notifications without session", http.MethodGet, "/api/notifications", "", http.StatusUnauthorized},
		{"payment intent without session", http.MethodPost, "/api/create-payment-intent", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(a, tt.method, tt.path, tt.token))
		})
	}
}
