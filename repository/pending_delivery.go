package repository

import (
	"context"
	"math"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/pkg/errors"
)

// PendingDelivery is the storage of the batch delivery queue
type PendingDelivery interface {
	// InsertPendingDeliveries ignores rows that already exist and returns the number of inserted rows
	InsertPendingDeliveries(ctx context.Context, deliveries []model.PendingDelivery) (int64, error)
	SelectPendingDeliveries(ctx context.Context, hashRange HashRange, limit uint64) ([]model.PendingDelivery, error)

	// UpdatePendingDeliveryStatus also counts one more processing attempt
	UpdatePendingDeliveryStatus(
		ctx context.Context, id int64, status model.PendingDeliveryStatus, lastError string,
	) error
}

type pendingDeliveryImpl struct {
}

// NewPendingDelivery ...
func NewPendingDelivery() PendingDelivery {
	return &pendingDeliveryImpl{}
}

// InsertPendingDeliveries ...
func (p *pendingDeliveryImpl) InsertPendingDeliveries(
	ctx context.Context, deliveries []model.PendingDelivery,
) (int64, error) {
	if len(deliveries) == 0 {
		return 0, nil
	}

	query := `
INSERT IGNORE INTO pending_delivery (
	promotion_id, customer_id, hash, channel, status, last_error
) VALUES (
	:promotion_id, :customer_id, :hash, :channel, :status, :last_error
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, deliveries)
	if err != nil {
		return 0, errors.Wrap(err, "insert pending deliveries")
	}
	return result.RowsAffected()
}

// SelectPendingDeliveries ...
func (p *pendingDeliveryImpl) SelectPendingDeliveries(
	ctx context.Context, hashRange HashRange, limit uint64,
) ([]model.PendingDelivery, error) {
	query := `
SELECT id, promotion_id, customer_id, hash, channel, status, last_error, attempts, created_at, updated_at
FROM pending_delivery
WHERE status = ? AND hash >= ? AND hash < ?
ORDER BY id
LIMIT ?
`
	end := uint64(math.MaxUint32) + 1
	if hashRange.End.Valid {
		end = uint64(hashRange.End.Num)
	}

	var result []model.PendingDelivery
	err := GetReadonly(ctx).SelectContext(ctx, &result, query,
		model.PendingDeliveryStatusPending, hashRange.Begin, end, limit)
	if err != nil {
		return nil, errors.Wrap(err, "select pending deliveries")
	}
	return result, nil
}

// UpdatePendingDeliveryStatus ...
func (p *pendingDeliveryImpl) UpdatePendingDeliveryStatus(
	ctx context.Context, id int64, status model.PendingDeliveryStatus, lastError string,
) error {
	query := `
UPDATE pending_delivery
SET status = ?, last_error = ?, attempts = attempts + 1
WHERE id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, truncateString(lastError, 1024), id)
	if err != nil {
		return errors.Wrap(err, "update pending delivery status")
	}
	return nil
}

func truncateString(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
