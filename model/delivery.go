package model

import "time"

// DeliveryChannel ...
type DeliveryChannel string

const (
	// DeliveryChannelPortal in-app inventory of the customer portal
	DeliveryChannelPortal DeliveryChannel = "portal"

	// DeliveryChannelEmail ...
	DeliveryChannelEmail DeliveryChannel = "email"

	// DeliveryChannelSMS ...
	DeliveryChannelSMS DeliveryChannel = "sms"
)

// Valid ...
func (c DeliveryChannel) Valid() bool {
	switch c {
	case DeliveryChannelPortal, DeliveryChannelEmail, DeliveryChannelSMS:
		return true
	default:
		return false
	}
}

// Delivery is at most one row per (promotion, customer, channel)
type Delivery struct {
	ID          int64           `db:"id"`
	PromotionID int64           `db:"promotion_id"`
	CustomerID  string          `db:"customer_id"`
	Channel     DeliveryChannel `db:"channel"`
	ClaimCode   string          `db:"claim_code"`
	DeliveredAt time.Time       `db:"delivered_at"`
}

// NullDelivery ...
type NullDelivery struct {
	Valid    bool
	Delivery Delivery
}
