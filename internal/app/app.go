package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/ClaudeMKA/Pulse-sub001/config"
	"github.com/ClaudeMKA/Pulse-sub001/internal/auth"
	"github.com/ClaudeMKA/Pulse-sub001/internal/cache"
	"github.com/ClaudeMKA/Pulse-sub001/internal/database"
	"github.com/ClaudeMKA/Pulse-sub001/internal/gateway"
	"github.com/ClaudeMKA/Pulse-sub001/internal/handlers"
	"github.com/ClaudeMKA/Pulse-sub001/internal/metrics"
	"github.com/ClaudeMKA/Pulse-sub001/internal/middleware"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/publisher"
	"github.com/ClaudeMKA/Pulse-sub001/internal/repository/posgrest"
	"github.com/ClaudeMKA/Pulse-sub001/internal/scheduler"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
	"github.com/ClaudeMKA/Pulse-sub001/internal/storage"
	"github.com/ClaudeMKA/Pulse-sub001/internal/subscriber"
	"github.com/ClaudeMKA/Pulse-sub001/internal/tracing"
)

type eventPublisher interface {
	service.Publisher
	Close() error
}

type App struct {
	config *config.Config
	Router *gin.Engine

	db              *gorm.DB
	publisher       eventPublisher
	consumer        *subscriber.KafkaConsumer
	scheduler       *scheduler.Scheduler
	shutdownTracing func(context.Context) error
	stopConsumers   context.CancelFunc
}

type Handlers struct {
	Auth          *handlers.AuthHandler
	Artists       *handlers.ResourceHandler[models.Artist]
	Locations     *handlers.ResourceHandler[models.Location]
	Stands        *handlers.ResourceHandler[models.Stand]
	Contact       *handlers.ContactHandler
	Events        *handlers.EventHandler
	Notifications *handlers.NotificationHandler
	Payments      *handlers.PaymentHandler
	Upload        *handlers.UploadHandler
	Health        *handlers.HealthHandler
}

// ConfigureLogging applies the logrus formatter and level for the environment.
func ConfigureLogging(cfg config.APP) {
	if cfg.IsLocal() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	ConfigureLogging(cfg.APP)
	if !cfg.APP.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdown, err := tracing.Init(context.Background(), cfg.Tracing, cfg.APP.ENV)
	if err != nil {
		logrus.Fatalf("failed to initialize tracing: %v", err)
	}
	a.shutdownTracing = shutdown

	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}
	a.db = db

	metrics.RegisterMetrics()

	userRepo := posgrest.NewUserRepository(db)
	eventRepo := posgrest.NewEventRepository(db)
	participationRepo := posgrest.NewParticipationRepository(db)
	notificationRepo := posgrest.NewNotificationRepository(db)
	reminderRepo := posgrest.NewReminderRepository(db)
	webhookEventRepo := posgrest.NewWebhookEventRepository(db)

	listCache := cache.New(cfg.Cache)
	a.publisher = a.newPublisher()

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	if cfg.Auth.JWTSecret == "change-me" && !cfg.APP.IsLocal() {
		logrus.Warn("JWT_SECRET is using the default value")
	}
	stripe := gateway.NewStripe(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	uploader := storage.NewUploader(cfg.Storage.PublicDir, cfg.Storage.MaxUploadBytes)

	notificationService := service.NewNotificationService(notificationRepo, participationRepo)
	paymentService := service.NewPaymentService(eventRepo, participationRepo, webhookEventRepo, stripe, notificationService, a.publisher)
	reminderService := service.NewReminderService(reminderRepo, a.publisher)

	h := Handlers{
		Auth: handlers.NewAuthHandler(service.NewAuthService(userRepo, tokens), cfg.Auth.CookieSecure),
		Artists: handlers.NewResourceHandler[models.Artist](
			service.NewResourceService[models.Artist]("artists", posgrest.New[models.Artist](db), listCache)),
		Locations: handlers.NewResourceHandler[models.Location](
			service.NewResourceService[models.Location]("locations", posgrest.New[models.Location](db), listCache)),
		Stands: handlers.NewResourceHandler[models.Stand](
			service.NewResourceService[models.Stand]("stands", posgrest.New[models.Stand](db), listCache)),
		Contact: handlers.NewContactHandler(
			service.NewResourceService[models.ContactMessage]("contact", posgrest.New[models.ContactMessage](db), nil)),
		Events:        handlers.NewEventHandler(service.NewEventService(eventRepo, participationRepo)),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Payments:      handlers.NewPaymentHandler(paymentService),
		Upload:        handlers.NewUploadHandler(uploader, cfg.Storage.MaxUploadBytes),
	}
	if sqlDB, err := db.DB(); err == nil {
		h.Health = handlers.NewHealthHandler(sqlDB)
	} else {
		h.Health = handlers.NewHealthHandler(nil)
	}

	a.Router = gin.New()
	a.Router.Use(
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.APP.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		otelgin.Middleware(cfg.Tracing.ServiceName),
		middleware.RequestLogger(),
		middleware.Metrics(),
	)
	a.Router.Static("/uploads", uploader.UploadsDir())
	a.RegisterRoutes(h, tokens)

	if cfg.Kafka.Enabled {
		a.initSubscribers(handlers.NewEventsHandler(notificationService))
	}

	a.scheduler = scheduler.New(reminderService, cfg.Scheduler.Interval)
	if cfg.Scheduler.Enabled {
		if err := a.scheduler.Start(); err != nil {
			logrus.Fatalf("failed to start reminder scheduler: %v", err)
		}
	}
}

func (a *App) newPublisher() eventPublisher {
	if !a.config.Kafka.Enabled {
		logrus.Info("Kafka disabled, domain events are only logged")
		return publisher.NewLogPublisher()
	}
	publishTopics := strings.Split(a.config.Kafka.PublishTopics, ",")
	return publisher.NewKafkaPublisher(a.config.Kafka.Brokers, publishTopics, a.config.Kafka.GetRetryConfig())
}

func (a *App) initSubscribers(eventsHandler *handlers.EventsHandler) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.ConsumerGroup

	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, groupID, a.publisher, a.config.Kafka.GetRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	a.stopConsumers = cancel
	a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.WithField("topic", topic).Debugf("received message %s", string(value))
		return eventsHandler.HandleEvents(ctx, topic, value)
	})
}

// Run serves HTTP until ctx is cancelled, then drains requests and stops
// the background workers.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Pulse listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.shutdown()
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	a.shutdown()
	logrus.Info("Pulse stopped")
	return err
}

func (a *App) shutdown() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.stopConsumers != nil {
		a.stopConsumers()
	}
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			logrus.WithError(err).Error("error closing consumer")
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.WithError(err).Error("error closing publisher")
		}
	}
	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdownTracing(ctx); err != nil {
			logrus.WithError(err).Warn("error flushing traces")
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func (a *App) DB() *gorm.DB {
	return a.db
}
