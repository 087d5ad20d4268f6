package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Trigger ...
type Trigger interface {
	ListActiveTriggers(ctx context.Context) ([]model.Trigger, error)
	UpsertTrigger(ctx context.Context, trigger model.Trigger) (int64, error)

	InsertTriggerExecution(ctx context.Context, execution model.TriggerExecution) error
	InsertAutomatedDeliveries(ctx context.Context, deliveries []model.AutomatedDelivery) error
	SelectRecentlyTriggeredCustomers(
		ctx context.Context, triggerID int64, customerIDs []string, since time.Time,
	) ([]string, error)
}

type triggerImpl struct {
}

// NewTrigger ...
func NewTrigger() Trigger {
	return &triggerImpl{}
}

// ListActiveTriggers ...
func (t *triggerImpl) ListActiveTriggers(ctx context.Context) ([]model.Trigger, error) {
	query := `
SELECT id, name, trigger_type, trigger_conditions, promotion_template, delivery_channels, active,
	created_at, updated_at
FROM promotion_trigger
WHERE active = TRUE
ORDER BY trigger_type, id
`
	var result []model.Trigger
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	if err != nil {
		return nil, errors.Wrap(err, "list active triggers")
	}
	return result, nil
}

// UpsertTrigger ...
func (t *triggerImpl) UpsertTrigger(ctx context.Context, trigger model.Trigger) (int64, error) {
	query := `
INSERT INTO promotion_trigger (
	id, name, trigger_type, trigger_conditions, promotion_template, delivery_channels, active
) VALUES (
	:id, :name, :trigger_type, :trigger_conditions, :promotion_template, :delivery_channels, :active
) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	trigger_type = NEW.trigger_type,
	trigger_conditions = NEW.trigger_conditions,
	promotion_template = NEW.promotion_template,
	delivery_channels = NEW.delivery_channels,
	active = NEW.active
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, trigger)
	if err != nil {
		return 0, errors.Wrap(err, "upsert trigger")
	}
	if trigger.ID != 0 {
		return trigger.ID, nil
	}
	return result.LastInsertId()
}

// InsertTriggerExecution ...
func (t *triggerImpl) InsertTriggerExecution(ctx context.Context, execution model.TriggerExecution) error {
	query := `
INSERT INTO trigger_execution (
	trigger_id, run_id, customers_found, deliveries_created, success, error_message, executed_at
) VALUES (
	:trigger_id, :run_id, :customers_found, :deliveries_created, :success, :error_message, :executed_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, execution)
	if err != nil {
		return errors.Wrap(err, "insert trigger execution")
	}
	return nil
}

// InsertAutomatedDeliveries ...
func (t *triggerImpl) InsertAutomatedDeliveries(ctx context.Context, deliveries []model.AutomatedDelivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	query := `
INSERT INTO automated_promotion_delivery (
	trigger_id, customer_id, promotion_id, triggered_at
) VALUES (
	:trigger_id, :customer_id, :promotion_id, :triggered_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, deliveries)
	if err != nil {
		return errors.Wrap(err, "insert automated deliveries")
	}
	return nil
}

// SelectRecentlyTriggeredCustomers returns the subset of customerIDs logged for the trigger at or after since
func (t *triggerImpl) SelectRecentlyTriggeredCustomers(
	ctx context.Context, triggerID int64, customerIDs []string, since time.Time,
) ([]string, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT DISTINCT customer_id FROM automated_promotion_delivery
WHERE trigger_id = ? AND triggered_at >= ? AND customer_id IN (?)
`, triggerID, since, customerIDs)
	if err != nil {
		return nil, err
	}

	db := GetReadonly(ctx)

	var result []string
	err = db.SelectContext(ctx, &result, db.Rebind(query), args...)
	if err != nil {
		return nil, errors.Wrap(err, "select recently triggered customers")
	}
	return result, nil
}
