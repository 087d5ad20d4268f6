package model

import "time"

// PendingDelivery is a delivery intent waiting for the worker
type PendingDelivery struct {
	ID          int64                 `db:"id"`
	PromotionID int64                 `db:"promotion_id"`
	CustomerID  string                `db:"customer_id"`
	Hash        uint32                `db:"hash"`
	Channel     DeliveryChannel       `db:"channel"`
	Status      PendingDeliveryStatus `db:"status"`
	LastError   string                `db:"last_error"`
	Attempts    int                   `db:"attempts"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PendingDeliveryStatus ...
type PendingDeliveryStatus int

const (
	// PendingDeliveryStatusPending ...
	PendingDeliveryStatusPending PendingDeliveryStatus = 1

	// PendingDeliveryStatusSent ...
	PendingDeliveryStatusSent PendingDeliveryStatus = 2

	// PendingDeliveryStatusFailed ...
	PendingDeliveryStatusFailed PendingDeliveryStatus = 3

	// PendingDeliveryStatusSkipped ...
	PendingDeliveryStatusSkipped PendingDeliveryStatus = 4
)
