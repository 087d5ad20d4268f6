package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Promotion ...
type Promotion struct {
	ID        int64         `db:"id"`
	TriggerID sql.NullInt64 `db:"trigger_id"`

	Title       string `db:"title"`
	Description string `db:"description"`

	DiscountType    DiscountType        `db:"discount_type"`
	DiscountValue   decimal.NullDecimal `db:"discount_value"`
	DiscountPercent decimal.NullDecimal `db:"discount_percent"`
	FreeAddon       sql.NullString      `db:"free_addon"`

	TargetAudience string          `db:"target_audience"`
	PromoCode      string          `db:"promo_code"`
	Status         PromotionStatus `db:"status"`
	ValidFrom      time.Time       `db:"valid_from"`
	ValidUntil     time.Time       `db:"valid_until"`

	MaxRedemptions  sql.NullInt64 `db:"max_redemptions"`
	RedemptionCount int64         `db:"redemption_count"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullPromotion ...
type NullPromotion struct {
	Valid     bool
	Promotion Promotion
}

// PromotionStatus ...
type PromotionStatus int

const (
	// PromotionStatusActive ...
	PromotionStatusActive PromotionStatus = 1

	// PromotionStatusExpired ...
	PromotionStatusExpired PromotionStatus = 2
)

// DiscountType is the shape of the benefit a promotion grants
type DiscountType string

const (
	// DiscountTypeValue fixed amount off
	DiscountTypeValue DiscountType = "value"

	// DiscountTypePercentage percentage off
	DiscountTypePercentage DiscountType = "percentage"

	// DiscountTypeFreeAddon a free add-on service
	DiscountTypeFreeAddon DiscountType = "free_addon"
)

// IsValidAt checks the validity window and status
func (p Promotion) IsValidAt(now time.Time) bool {
	if p.Status != PromotionStatusActive {
		return false
	}
	return !now.Before(p.ValidFrom) && now.Before(p.ValidUntil)
}
