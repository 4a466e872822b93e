package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ClaudeMKA/Pulse-sub001/internal/auth"
	"github.com/ClaudeMKA/Pulse-sub001/internal/middleware"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models/dto"
)

type AuthService interface {
	Register(ctx context.Context, input *dto.Register) (*models.User, error)
	Login(ctx context.Context, input *dto.Login) (*dto.Session, error)
	Me(ctx context.Context, userID uint) (*models.User, error)
}

type AuthHandler struct {
	Service      AuthService
	CookieSecure bool
}

func NewAuthHandler(s AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Service: s, CookieSecure: cookieSecure}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	user, err := h.Service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	session, err := h.Service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	maxAge := int(time.Until(time.Unix(session.ExpiresAt, 0)).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, session.Token, maxAge, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, session)
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	user, err := h.Service.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
