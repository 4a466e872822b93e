package dto

import (
	"strings"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

type Register struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *Register) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = models.NormalizeEmail(r.Email)
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l *Login) Sanitize() {
	l.Email = models.NormalizeEmail(l.Email)
}

type Session struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
	User      *models.User `json:"user"`
}
