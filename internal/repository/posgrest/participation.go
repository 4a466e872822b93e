package posgrest

import (
	"context"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"gorm.io/gorm"
)

type ParticipationRepository struct {
	*repository[models.Participation]
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{New[models.Participation](db)}
}

// FindByUserAndEvent returns gorm.ErrRecordNotFound when the user never tried to join.
func (r *ParticipationRepository) FindByUserAndEvent(ctx context.Context, userID, eventID uint) (*models.Participation, error) {
	participations, err := r.GetBy(ctx, "user_id = ? AND event_id = ?", userID, eventID)
	if err != nil {
		return nil, err
	}
	if len(participations) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &participations[0], nil
}

// ResetIntent points an existing participation at a freshly issued payment intent.
func (r *ParticipationRepository) ResetIntent(ctx context.Context, id uint, intentID string, amount float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Participation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_intent_id": intentID,
			"amount_paid":       amount,
			"payment_status":    models.StatusPending,
		}).Error
}

func (r *ParticipationRepository) UpdateStatusByIntent(ctx context.Context, intentID string, status models.PaymentStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Participation{}).
		Where("payment_intent_id = ?", intentID).
		Update("payment_status", status)
	return res.RowsAffected, res.Error
}

func (r *ParticipationRepository) FirstByIntent(ctx context.Context, intentID string) (*models.Participation, error) {
	var participation models.Participation
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("payment_intent_id = ?", intentID).
		First(&participation).Error
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID uint) ([]models.Participation, error) {
	var participations []models.Participation
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&participations).Error
	if err != nil {
		return nil, err
	}
	return participations, nil
}

func (r *ParticipationRepository) ListByUser(ctx context.Context, userID uint) ([]models.Participation, error) {
	var participations []models.Participation
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Location").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&participations).Error
	if err != nil {
		return nil, err
	}
	return participations, nil
}

func (r *ParticipationRepository) PaidUserIDs(ctx context.Context, eventID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Participation{}).
		Where("event_id = ? AND payment_status = ?", eventID, models.StatusPaid).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
