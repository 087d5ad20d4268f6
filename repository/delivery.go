package repository

import (
	"context"
	"database/sql"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Delivery ...
type Delivery interface {
	FindDelivery(
		ctx context.Context, promotionID int64, customerID string, channel model.DeliveryChannel,
	) (model.NullDelivery, error)
	FindCustomerDeliveries(ctx context.Context, promotionID int64, customerID string) ([]model.Delivery, error)
	FindDeliveriesByCustomers(ctx context.Context, promotionID int64, customerIDs []string) ([]model.Delivery, error)

	// UpsertDelivery inserts the delivery if no row exists for (promotion, customer, channel)
	// and returns the stored row, which may be the row of a concurrent writer
	UpsertDelivery(ctx context.Context, delivery model.Delivery) (model.Delivery, error)
}

type deliveryImpl struct {
}

// NewDelivery ...
func NewDelivery() Delivery {
	return &deliveryImpl{}
}

const selectDeliveryColumns = `SELECT id, promotion_id, customer_id, channel, claim_code, delivered_at
FROM promotion_delivery`

// FindDelivery ...
func (d *deliveryImpl) FindDelivery(
	ctx context.Context, promotionID int64, customerID string, channel model.DeliveryChannel,
) (model.NullDelivery, error) {
	query := selectDeliveryColumns + `
WHERE promotion_id = ? AND customer_id = ? AND channel = ?
`
	var delivery model.Delivery
	err := GetReadonly(ctx).GetContext(ctx, &delivery, query, promotionID, customerID, channel)
	if err == sql.ErrNoRows {
		return model.NullDelivery{}, nil
	}
	if err != nil {
		return model.NullDelivery{}, errors.Wrap(err, "find delivery")
	}
	return model.NullDelivery{Valid: true, Delivery: delivery}, nil
}

// FindCustomerDeliveries ...
func (d *deliveryImpl) FindCustomerDeliveries(
	ctx context.Context, promotionID int64, customerID string,
) ([]model.Delivery, error) {
	query := selectDeliveryColumns + `
WHERE promotion_id = ? AND customer_id = ? ORDER BY id
`
	var result []model.Delivery
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, promotionID, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "find customer deliveries")
	}
	return result, nil
}

// FindDeliveriesByCustomers ...
func (d *deliveryImpl) FindDeliveriesByCustomers(
	ctx context.Context, promotionID int64, customerIDs []string,
) ([]model.Delivery, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(selectDeliveryColumns+`
WHERE promotion_id = ? AND customer_id IN (?) ORDER BY id
`, promotionID, customerIDs)
	if err != nil {
		return nil, err
	}

	db := GetReadonly(ctx)

	var result []model.Delivery
	err = db.SelectContext(ctx, &result, db.Rebind(query), args...)
	if err != nil {
		return nil, errors.Wrap(err, "find deliveries by customers")
	}
	return result, nil
}

// UpsertDelivery ...
func (d *deliveryImpl) UpsertDelivery(ctx context.Context, delivery model.Delivery) (model.Delivery, error) {
	query := `
INSERT INTO promotion_delivery (
	promotion_id, customer_id, channel, claim_code, delivered_at
) VALUES (
	:promotion_id, :customer_id, :channel, :claim_code, :delivered_at
) ON DUPLICATE KEY UPDATE id = id
`
	tx := GetTx(ctx)
	_, err := tx.NamedExecContext(ctx, query, delivery)
	if err != nil {
		return model.Delivery{}, errors.Wrap(err, "upsert delivery")
	}

	var stored model.Delivery
	err = tx.GetContext(ctx, &stored, selectDeliveryColumns+`
WHERE promotion_id = ? AND customer_id = ? AND channel = ?
`, delivery.PromotionID, delivery.CustomerID, delivery.Channel)
	if err != nil {
		return model.Delivery{}, errors.Wrap(err, "get upserted delivery")
	}
	return stored, nil
}
