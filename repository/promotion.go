package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/pkg/errors"
)

// Promotion ...
type Promotion interface {
	InsertPromotion(ctx context.Context, promo model.Promotion) (int64, error)
	GetPromotion(ctx context.Context, id int64) (model.NullPromotion, error)
	ExpirePromotions(ctx context.Context, now time.Time) (int64, error)
}

type promotionImpl struct {
}

// NewPromotion ...
func NewPromotion() Promotion {
	return &promotionImpl{}
}

// InsertPromotion ...
func (p *promotionImpl) InsertPromotion(ctx context.Context, promo model.Promotion) (int64, error) {
	query := `
INSERT INTO promotion (
	trigger_id, title, description,
	discount_type, discount_value, discount_percent, free_addon,
	target_audience, promo_code, status, valid_from, valid_until,
	max_redemptions, redemption_count
) VALUES (
	:trigger_id, :title, :description,
	:discount_type, :discount_value, :discount_percent, :free_addon,
	:target_audience, :promo_code, :status, :valid_from, :valid_until,
	:max_redemptions, :redemption_count
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, promo)
	if err != nil {
		return 0, errors.Wrap(err, "insert promotion")
	}
	return result.LastInsertId()
}

// GetPromotion ...
func (p *promotionImpl) GetPromotion(ctx context.Context, id int64) (model.NullPromotion, error) {
	query := `
SELECT id, trigger_id, title, description,
	discount_type, discount_value, discount_percent, free_addon,
	target_audience, promo_code, status, valid_from, valid_until,
	max_redemptions, redemption_count, created_at, updated_at
FROM promotion WHERE id = ?
`
	var promo model.Promotion
	err := GetReadonly(ctx).GetContext(ctx, &promo, query, id)
	if err == sql.ErrNoRows {
		return model.NullPromotion{}, nil
	}
	if err != nil {
		return model.NullPromotion{}, errors.Wrap(err, "get promotion")
	}
	return model.NullPromotion{Valid: true, Promotion: promo}, nil
}

// ExpirePromotions ...
func (p *promotionImpl) ExpirePromotions(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE promotion SET status = ? WHERE status = ? AND valid_until < ?`
	result, err := GetTx(ctx).ExecContext(ctx, query,
		model.PromotionStatusExpired, model.PromotionStatusActive, now)
	if err != nil {
		return 0, errors.Wrap(err, "expire promotions")
	}
	return result.RowsAffected()
}
