package model

import "time"

// PreferenceCategoryPromotional ...
const PreferenceCategoryPromotional = "promotional"

// PreferenceCategoryAll applies to every category of a channel
const PreferenceCategoryAll = "all"

// CommunicationPreference is owned by the CRM, read only here
type CommunicationPreference struct {
	CustomerID string          `db:"customer_id"`
	Channel    DeliveryChannel `db:"channel"`
	Category   string          `db:"category"`
	OptedOut   bool            `db:"opted_out"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
