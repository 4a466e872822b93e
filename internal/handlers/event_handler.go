package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClaudeMKA/Pulse-sub001/internal/middleware"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models/dto"
)

type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id uint) (*models.Event, error)
	Create(ctx context.Context, input *dto.Event) (*models.Event, error)
	Update(ctx context.Context, id uint, input *dto.Event) (*models.Event, error)
	Delete(ctx context.Context, id uint) error
	Participants(ctx context.Context, eventID uint) ([]dto.Participant, error)
	UserEvents(ctx context.Context, requester *models.User, userID uint) ([]models.Participation, error)
}

type EventHandler struct {
	Service EventService
}

func NewEventHandler(s EventService) *EventHandler {
	return &EventHandler{Service: s}
}

// GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	event, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	event, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	event, err := h.Service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/events/:id/participants
func (h *EventHandler) Participants(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	participants, err := h.Service.Participants(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// GET /api/users/:id/events
func (h *EventHandler) UserEvents(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	participations, err := h.Service.UserEvents(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participations)
}
