package posgrest

import (
	"context"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	*repository[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{New[models.User](db)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
