package promotion

import (
	"context"
	"fmt"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/pkg/util"
	"github.com/QuangTung97/promo-delivery/repository"
	"go.uber.org/zap"
)

// QueueResult ...
type QueueResult struct {
	Queued  int
	Skipped int
	Errors  []string
}

// queueBatchSize bounds the number of customers per IN query and per insert statement
const queueBatchSize = 500

// BatchQueue persists pending delivery intents, one per (customer, channel)
type BatchQueue struct {
	provider     repository.Provider
	deliveryRepo repository.Delivery
	pendingRepo  repository.PendingDelivery
}

var _ DeliveryQueue = &BatchQueue{}

// NewBatchQueue ...
func NewBatchQueue(
	provider repository.Provider, deliveryRepo repository.Delivery, pendingRepo repository.PendingDelivery,
) *BatchQueue {
	return &BatchQueue{
		provider:     provider,
		deliveryRepo: deliveryRepo,
		pendingRepo:  pendingRepo,
	}
}

type deliveryKey struct {
	customerID string
	channel    model.DeliveryChannel
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, existed := seen[v]; existed {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// QueueDeliveries skips combinations already delivered, re-queueing an existing intent is a no-op
func (q *BatchQueue) QueueDeliveries(
	ctx context.Context, promotionID int64, customerIDs []string, channels []model.DeliveryChannel,
) QueueResult {
	var result QueueResult

	validChannels := make([]model.DeliveryChannel, 0, len(channels))
	for _, channel := range channels {
		if !channel.Valid() {
			result.Errors = append(result.Errors, fmt.Sprintf("unknown delivery channel %q", channel))
			continue
		}
		validChannels = append(validChannels, channel)
	}

	customerIDs = uniqueStrings(customerIDs)
	result.Skipped += len(customerIDs) * (len(channels) - len(validChannels))

	for begin := 0; begin < len(customerIDs); begin += queueBatchSize {
		end := begin + queueBatchSize
		if end > len(customerIDs) {
			end = len(customerIDs)
		}
		q.queueBatch(ctx, promotionID, customerIDs[begin:end], validChannels, &result)
	}

	pendingDeliveriesQueuedTotal.Add(float64(result.Queued))

	otellib.Extract(ctx).Info("queued pending deliveries",
		zap.Int64("promotion_id", promotionID),
		zap.Int("queued", result.Queued),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
	)
	return result
}

func (q *BatchQueue) queueBatch(
	ctx context.Context, promotionID int64, customerIDs []string,
	channels []model.DeliveryChannel, result *QueueResult,
) {
	delivered, err := q.deliveryRepo.FindDeliveriesByCustomers(q.provider.Readonly(ctx), promotionID, customerIDs)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	deliveredSet := make(map[deliveryKey]struct{}, len(delivered))
	for _, d := range delivered {
		deliveredSet[deliveryKey{customerID: d.CustomerID, channel: d.Channel}] = struct{}{}
	}

	rows := make([]model.PendingDelivery, 0, len(customerIDs)*len(channels))
	for _, customerID := range customerIDs {
		hash := util.HashFunc(customerID)
		for _, channel := range channels {
			if _, existed := deliveredSet[deliveryKey{customerID: customerID, channel: channel}]; existed {
				result.Skipped++
				continue
			}
			rows = append(rows, model.PendingDelivery{
				PromotionID: promotionID,
				CustomerID:  customerID,
				Hash:        hash,
				Channel:     channel,
				Status:      model.PendingDeliveryStatusPending,
			})
		}
	}

	if len(rows) == 0 {
		return
	}

	var inserted int64
	err = q.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = q.pendingRepo.InsertPendingDeliveries(ctx, rows)
		return err
	})
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	result.Queued += int(inserted)
	result.Skipped += len(rows) - int(inserted)
}
