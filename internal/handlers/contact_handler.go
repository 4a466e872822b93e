package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

type ContactHandler struct {
	*ResourceHandler[models.ContactMessage]
}

func NewContactHandler(s ResourceService[models.ContactMessage]) *ContactHandler {
	return &ContactHandler{NewResourceHandler(s)}
}

// POST /api/contact
// Public submissions always start as NEW.
func (h *ContactHandler) Create(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		badBody(c)
		return
	}
	msg.Status = models.ContactStatusNew
	if err := h.Service.Create(c.Request.Context(), &msg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
