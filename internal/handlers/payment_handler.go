package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models/dto"
)

// Stripe refuses webhook payloads above this size.
const maxWebhookBytes = 65536

const StripeSignatureHeader = "Stripe-Signature"

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, userID uint, req dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookAck, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /api/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	resp, err := h.Service.CreatePaymentIntent(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/webhook/stripe
// The raw body is required to verify the signature, so it is never bound as JSON.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return
		}
		badBody(c)
		return
	}

	ack, err := h.Service.HandleWebhook(c.Request.Context(), payload, c.GetHeader(StripeSignatureHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
