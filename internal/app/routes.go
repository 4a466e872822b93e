package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ClaudeMKA/Pulse-sub001/internal/middleware"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

func (a *App) RegisterRoutes(h Handlers, tokens middleware.TokenParser) {
	a.Router.GET("/health", h.Health.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	session := middleware.RequireSession(tokens)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)
	admin := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{session, requireAdmin, handler}
	}
	limited := middleware.RateLimit(a.config.APP.PublicRateLimit, a.config.APP.PublicBurst)

	api := a.Router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", limited, h.Auth.Register)
	authGroup.POST("/login", limited, h.Auth.Login)
	authGroup.POST("/logout", h.Auth.Logout)
	authGroup.GET("/me", session, h.Auth.Me)

	artists := api.Group("/artists")
	artists.GET("", h.Artists.List)
	artists.GET("/:id", h.Artists.Get)
	artists.POST("", admin(h.Artists.Create)...)
	artists.PUT("/:id", admin(h.Artists.Update)...)
	artists.DELETE("/:id", admin(h.Artists.Delete)...)

	locations := api.Group("/locations")
	locations.GET("", h.Locations.List)
	locations.GET("/:id", h.Locations.Get)
	locations.POST("", admin(h.Locations.Create)...)
	locations.PUT("/:id", admin(h.Locations.Update)...)
	locations.DELETE("/:id", admin(h.Locations.Delete)...)

	stands := api.Group("/stands")
	stands.GET("", h.Stands.List)
	stands.GET("/:id", h.Stands.Get)
	stands.POST("", admin(h.Stands.Create)...)
	stands.PUT("/:id", admin(h.Stands.Update)...)
	stands.DELETE("/:id", admin(h.Stands.Delete)...)

	contact := api.Group("/contact")
	contact.POST("", limited, h.Contact.Create)
	contact.GET("", admin(h.Contact.List)...)
	contact.PUT("/:id", admin(h.Contact.Update)...)
	contact.DELETE("/:id", admin(h.Contact.Delete)...)

	events := api.Group("/events")
	events.GET("", h.Events.List)
	events.GET("/:id", h.Events.Get)
	events.POST("", admin(h.Events.Create)...)
	events.PUT("/:id", admin(h.Events.Update)...)
	events.DELETE("/:id", admin(h.Events.Delete)...)
	events.GET("/:id/participants", admin(h.Events.Participants)...)

	api.GET("/users/:id/events", session, h.Events.UserEvents)

	notifications := api.Group("/notifications", session)
	notifications.GET("", h.Notifications.List)
	notifications.PUT("/read-all", h.Notifications.MarkAllRead)
	notifications.PUT("/:id/read", h.Notifications.MarkRead)

	api.POST("/create-payment-intent", session, h.Payments.CreatePaymentIntent)
	api.POST("/webhook/stripe", h.Payments.Webhook)

	api.POST("/upload", admin(h.Upload.Upload)...)
}
