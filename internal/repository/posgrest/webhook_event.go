package posgrest

import (
	"context"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WebhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// ApplyPaymentStatus records the gateway event and moves every participation
// on intentID to status in one transaction. claimed is false, and nothing is
// updated, when the event id was already recorded.
func (r *WebhookEventRepository) ApplyPaymentStatus(
	ctx context.Context,
	event *models.ProcessedWebhookEvent,
	intentID string,
	status models.PaymentStatus,
) (claimed bool, affected int64, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(event)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		claimed = true
		if intentID == "" {
			return nil
		}

		res = tx.Model(&models.Participation{}).
			Where("payment_intent_id = ?", intentID).
			Update("payment_status", status)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return claimed, affected, nil
}

func (r *WebhookEventRepository) Record(ctx context.Context, event *models.ProcessedWebhookEvent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(event).Error
}

// Release forgets a recorded event so a redelivery is processed again.
func (r *WebhookEventRepository) Release(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ProcessedWebhookEvent{}).Error
}
