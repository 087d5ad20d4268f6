package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Trigger is a persisted rule selecting a customer cohort for an automated promotion
type Trigger struct {
	ID               int64             `db:"id"`
	Name             string            `db:"name"`
	TriggerType      TriggerType       `db:"trigger_type"`
	Conditions       TriggerConditions `db:"trigger_conditions"`
	Template         PromotionTemplate `db:"promotion_template"`
	DeliveryChannels DeliveryChannels  `db:"delivery_channels"`
	Active           bool              `db:"active"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TriggerType ...
type TriggerType string

const (
	// TriggerTypeInactiveCustomer ...
	TriggerTypeInactiveCustomer TriggerType = "inactive_customer"

	// TriggerTypeBirthday ...
	TriggerTypeBirthday TriggerType = "birthday"

	// TriggerTypeAnniversary ...
	TriggerTypeAnniversary TriggerType = "anniversary"

	// TriggerTypeHighValue ...
	TriggerTypeHighValue TriggerType = "high_value"

	// TriggerTypeReferral is handled by the referral event flow, not by the runner
	TriggerTypeReferral TriggerType = "referral"
)

// TriggerConditions are the free-form parameters of a trigger
type TriggerConditions struct {
	DaysInactive     *int             `json:"days_inactive,omitempty"`
	DaysAhead        *int             `json:"days_ahead,omitempty"`
	MinLifetimeValue *decimal.Decimal `json:"min_lifetime_value,omitempty"`
	MaxCustomers     *int             `json:"max_customers,omitempty"`
}

// PromotionTemplate contains the fields used to instantiate a Promotion
type PromotionTemplate struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DiscountType    DiscountType     `json:"discount_type"`
	DiscountValue   *decimal.Decimal `json:"discount_value,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	FreeAddon       string           `json:"free_addon,omitempty"`
	TargetAudience  string           `json:"target_audience,omitempty"`
	ValidDays       int              `json:"valid_days,omitempty"`
	CodePrefix      string           `json:"code_prefix,omitempty"`
	MaxRedemptions  *int64           `json:"max_redemptions,omitempty"`
}

// DeliveryChannels is an ordered list of channels
type DeliveryChannels []DeliveryChannel

func scanJSON(src interface{}, dest interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("model: can not scan json from %T", src)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// Scan ...
func (c *TriggerConditions) Scan(src interface{}) error {
	return scanJSON(src, c)
}

// Value ...
func (c TriggerConditions) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan ...
func (t *PromotionTemplate) Scan(src interface{}) error {
	return scanJSON(src, t)
}

// Value ...
func (t PromotionTemplate) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan ...
func (c *DeliveryChannels) Scan(src interface{}) error {
	return scanJSON(src, c)
}

// Value ...
func (c DeliveryChannels) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]DeliveryChannel(c))
}
