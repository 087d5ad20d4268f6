package model

import "time"

// AutomatedDelivery is the append-only log used for cooldown of triggers
type AutomatedDelivery struct {
	ID          int64     `db:"id"`
	TriggerID   int64     `db:"trigger_id"`
	CustomerID  string    `db:"customer_id"`
	PromotionID int64     `db:"promotion_id"`
	TriggeredAt time.Time `db:"triggered_at"`
}

// TriggerExecution ...
type TriggerExecution struct {
	ID                int64     `db:"id"`
	TriggerID         int64     `db:"trigger_id"`
	RunID             string    `db:"run_id"`
	CustomersFound    int64     `db:"customers_found"`
	DeliveriesCreated int64     `db:"deliveries_created"`
	Success           bool      `db:"success"`
	ErrorMessage      string    `db:"error_message"`
	ExecutedAt        time.Time `db:"executed_at"`
}
