package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/models/dto"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 8

type AuthService struct {
	Users  UserRepo
	Tokens TokenIssuer
}

func NewAuthService(users UserRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{
		Users:  users,
		Tokens: tokens,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) Register(ctx context.Context, input *dto.Register) (*models.User, error) {
	input.Sanitize()
	if input.Name == "" {
		return nil, validationError(errors.New("name is required"))
	}
	if err := models.ValidateEmail(input.Email); err != nil {
		return nil, validationError(err)
	}
	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		return nil, validationError(fmt.Errorf("password must be at least %d characters", MinPasswordLength))
	}

	if _, err := s.Users.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input *dto.Login) (*dto.Session, error) {
	input.Sanitize()
	user, err := s.Users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.Session{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user,
	}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}
