package promotion

import (
	"context"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/repository"
	"go.uber.org/zap"
)

// DrainResult ...
type DrainResult struct {
	Processed int
	Sent      int
	Failed    int
	Skipped   int

	// Retried intents failed but stay pending for the next drain
	Retried int
}

// IWorker ...
type IWorker interface {
	Drain(ctx context.Context, hashRange repository.HashRange, limit uint64) (DrainResult, error)
}

var _ IWorker = &Worker{}

// Worker delivers pending intents of a hash range through the channel adapters
type Worker struct {
	provider      repository.Provider
	pendingRepo   repository.PendingDelivery
	promotionRepo repository.Promotion
	customerRepo  repository.Customer
	deliverer     IDeliverer

	opts serviceOptions
}

// NewWorker ...
func NewWorker(
	provider repository.Provider,
	pendingRepo repository.PendingDelivery,
	promotionRepo repository.Promotion,
	customerRepo repository.Customer,
	deliverer IDeliverer,
	options ...Option,
) *Worker {
	return &Worker{
		provider:      provider,
		pendingRepo:   pendingRepo,
		promotionRepo: promotionRepo,
		customerRepo:  customerRepo,
		deliverer:     deliverer,

		opts: newServiceOptions(options...),
	}
}

type drainState struct {
	w   *Worker
	ctx context.Context

	promotions map[int64]model.NullPromotion
	result     DrainResult
}

func (s *drainState) getPromotion(id int64) (model.NullPromotion, error) {
	if promo, existed := s.promotions[id]; existed {
		return promo, nil
	}
	promo, err := s.w.promotionRepo.GetPromotion(s.w.provider.Readonly(s.ctx), id)
	if err != nil {
		return model.NullPromotion{}, err
	}
	s.promotions[id] = promo
	return promo, nil
}

type drainOutcome struct {
	status    model.PendingDeliveryStatus
	reason    string
	retryable bool
}

func failedOutcome(reason string, retryable bool) drainOutcome {
	return drainOutcome{status: model.PendingDeliveryStatusFailed, reason: reason, retryable: retryable}
}

func skippedOutcome(reason string) drainOutcome {
	return drainOutcome{status: model.PendingDeliveryStatusSkipped, reason: reason}
}

func (s *drainState) process(pending model.PendingDelivery) drainOutcome {
	nullPromo, err := s.getPromotion(pending.PromotionID)
	if err != nil {
		return failedOutcome(err.Error(), true)
	}
	if !nullPromo.Valid {
		return skippedOutcome("promotion not found")
	}
	if !nullPromo.Promotion.IsValidAt(s.w.opts.now()) {
		return skippedOutcome("promotion is no longer valid")
	}

	nullCustomer, err := s.w.customerRepo.GetCustomer(s.w.provider.Readonly(s.ctx), pending.CustomerID)
	if err != nil {
		return failedOutcome(err.Error(), true)
	}
	if !nullCustomer.Valid {
		return skippedOutcome("customer not found")
	}

	results := s.w.deliverer.Deliver(s.ctx,
		NewPromotionData(nullPromo.Promotion),
		NewCustomerData(nullCustomer.Customer),
		[]model.DeliveryChannel{pending.Channel},
	)
	result, ok := results.Get(pending.Channel)
	if !ok {
		return failedOutcome("no delivery result", false)
	}
	if !result.Success {
		return failedOutcome(result.Error, result.Retryable)
	}
	return drainOutcome{status: model.PendingDeliveryStatusSent}
}

func (s *drainState) handle(pending model.PendingDelivery) {
	outcome := s.process(pending)

	// a retryable failure stays pending until the last attempt
	status := outcome.status
	if outcome.retryable && pending.Attempts+1 < s.w.opts.maxDeliveryAttempts {
		status = model.PendingDeliveryStatusPending
	}

	err := s.w.provider.Transact(s.ctx, func(ctx context.Context) error {
		return s.w.pendingRepo.UpdatePendingDeliveryStatus(ctx, pending.ID, status, outcome.reason)
	})
	if err != nil {
		otellib.Extract(s.ctx).Error("update pending delivery status",
			zap.Int64("pending_delivery_id", pending.ID), zap.Error(err))
	}

	s.result.Processed++
	switch status {
	case model.PendingDeliveryStatusSent:
		s.result.Sent++
	case model.PendingDeliveryStatusSkipped:
		s.result.Skipped++
	case model.PendingDeliveryStatusPending:
		s.result.Retried++
	default:
		s.result.Failed++
	}
}

// Drain processes at most limit pending intents of the hash range
func (w *Worker) Drain(ctx context.Context, hashRange repository.HashRange, limit uint64) (DrainResult, error) {
	pendingList, err := w.pendingRepo.SelectPendingDeliveries(w.provider.Readonly(ctx), hashRange, limit)
	if err != nil {
		return DrainResult{}, err
	}

	state := &drainState{
		w:          w,
		ctx:        ctx,
		promotions: map[int64]model.NullPromotion{},
	}
	for _, pending := range pendingList {
		if ctx.Err() != nil {
			break
		}
		state.handle(pending)
	}

	otellib.Extract(ctx).Info("drained pending deliveries",
		zap.Uint32("hash_begin", hashRange.Begin),
		zap.Int("processed", state.result.Processed),
		zap.Int("sent", state.result.Sent),
		zap.Int("failed", state.result.Failed),
		zap.Int("skipped", state.result.Skipped),
		zap.Int("retried", state.result.Retried),
	)
	return state.result, nil
}
