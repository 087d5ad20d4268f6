package promotion

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrUnknownTriggerType ...
var ErrUnknownTriggerType = errors.New("unknown trigger type")

// RunLeaseKey is the memcached key held while a trigger run is in progress
const RunLeaseKey = "promo:trigger-run"

// TriggerProcessor evaluates a single trigger of each supported type
type TriggerProcessor interface {
	ProcessInactiveTrigger(ctx context.Context, trigger model.Trigger) TriggerResult
	ProcessBirthdayTrigger(ctx context.Context, trigger model.Trigger) TriggerResult
	ProcessAnniversaryTrigger(ctx context.Context, trigger model.Trigger) TriggerResult
	ProcessHighValueTrigger(ctx context.Context, trigger model.Trigger) TriggerResult
}

var _ TriggerProcessor = &TriggerEvaluator{}

// IRunner ...
type IRunner interface {
	RunAll(ctx context.Context) RunResult
}

// RunResult ...
type RunResult struct {
	RunID   string
	Success bool

	// Skipped when another instance holds the run lease
	Skipped bool

	TriggersProcessed     int
	TotalCustomersFound   int
	TotalDeliveriesQueued int
	Results               []TriggerResult
	Errors                []string
}

// Runner runs all active triggers sequentially
type Runner struct {
	provider    repository.Provider
	triggerRepo repository.Trigger
	processor   TriggerProcessor
	locker      RunLocker

	opts serviceOptions
}

var _ IRunner = &Runner{}

// NewRunner ...
func NewRunner(
	provider repository.Provider, triggerRepo repository.Trigger,
	processor TriggerProcessor, locker RunLocker,
	options ...Option,
) *Runner {
	return &Runner{
		provider:    provider,
		triggerRepo: triggerRepo,
		processor:   processor,
		locker:      locker,

		opts: newServiceOptions(options...),
	}
}

// RunAll never stops at a failing trigger, every trigger gets an execution log row
func (r *Runner) RunAll(ctx context.Context) RunResult {
	runID := uuid.NewString()
	ctx = otellib.With(ctx, zap.String("run_id", runID))
	logger := otellib.Extract(ctx)

	result := RunResult{
		RunID: runID,
	}

	locked, err := r.locker.TryLock(ctx, RunLeaseKey, r.opts.runLeaseTTL)
	if err != nil {
		logger.Error("acquire run lease", zap.Error(err))
		result.Errors = append(result.Errors, errors.Wrap(err, "acquire run lease").Error())
		return result
	}
	if !locked {
		logger.Info("trigger run skipped, run lease is held by another instance")
		result.Success = true
		result.Skipped = true
		return result
	}
	defer func() {
		if err := r.locker.Unlock(ctx, RunLeaseKey); err != nil {
			logger.Error("release run lease", zap.Error(err))
		}
	}()

	triggers, err := r.triggerRepo.ListActiveTriggers(r.provider.Readonly(ctx))
	if err != nil {
		logger.Error("list active triggers", zap.Error(err))
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	logger.Info("trigger run started", zap.Int("triggers", len(triggers)))

	for _, trigger := range triggers {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, errors.Wrap(ctx.Err(), "trigger run interrupted").Error())
			break
		}

		triggerResult := r.runTrigger(ctx, trigger)

		if err := r.logExecution(ctx, runID, triggerResult); err != nil {
			logger.Error("log trigger execution", zap.Int64("trigger_id", trigger.ID), zap.Error(err))
			triggerResult.Errors = append(triggerResult.Errors, err.Error())
		}

		triggerRunsTotal.WithLabelValues(string(trigger.TriggerType), resultLabel(triggerResult.Success)).Inc()

		result.TriggersProcessed++
		result.TotalCustomersFound += triggerResult.CustomersFound
		result.TotalDeliveriesQueued += triggerResult.DeliveriesQueued
		result.Results = append(result.Results, triggerResult)
	}

	result.Success = len(result.Errors) == 0
	for _, triggerResult := range result.Results {
		if !triggerResult.Success {
			result.Success = false
		}
	}

	logger.Info("trigger run finished",
		zap.Bool("success", result.Success),
		zap.Int("triggers_processed", result.TriggersProcessed),
		zap.Int("customers_found", result.TotalCustomersFound),
		zap.Int("deliveries_queued", result.TotalDeliveriesQueued),
	)
	return result
}

func (r *Runner) runTrigger(ctx context.Context, trigger model.Trigger) (result TriggerResult) {
	defer func() {
		if p := recover(); p != nil {
			otellib.Extract(ctx).Error("trigger evaluation panicked",
				zap.Int64("trigger_id", trigger.ID),
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()),
			)
			result = failedTriggerResult(trigger, fmt.Errorf("trigger evaluation panicked: %v", p))
		}
	}()

	switch trigger.TriggerType {
	case model.TriggerTypeInactiveCustomer:
		return r.processor.ProcessInactiveTrigger(ctx, trigger)
	case model.TriggerTypeBirthday:
		return r.processor.ProcessBirthdayTrigger(ctx, trigger)
	case model.TriggerTypeAnniversary:
		return r.processor.ProcessAnniversaryTrigger(ctx, trigger)
	case model.TriggerTypeHighValue:
		return r.processor.ProcessHighValueTrigger(ctx, trigger)
	case model.TriggerTypeReferral:
		// referrals are delivered by the referral event flow
		return TriggerResult{
			TriggerID:   trigger.ID,
			TriggerName: trigger.Name,
			TriggerType: trigger.TriggerType,
			Success:     true,
		}
	default:
		return failedTriggerResult(trigger, errors.Wrapf(ErrUnknownTriggerType, "trigger type %q", trigger.TriggerType))
	}
}

func failedTriggerResult(trigger model.Trigger, err error) TriggerResult {
	return TriggerResult{
		TriggerID:   trigger.ID,
		TriggerName: trigger.Name,
		TriggerType: trigger.TriggerType,
		Success:     false,
		Errors:      []string{err.Error()},
	}
}

func (r *Runner) logExecution(ctx context.Context, runID string, result TriggerResult) error {
	return r.provider.Transact(ctx, func(ctx context.Context) error {
		return r.triggerRepo.InsertTriggerExecution(ctx, model.TriggerExecution{
			TriggerID:         result.TriggerID,
			RunID:             runID,
			CustomersFound:    int64(result.CustomersFound),
			DeliveriesCreated: int64(result.DeliveriesQueued),
			Success:           result.Success,
			ErrorMessage:      strings.Join(result.Errors, "; "),
			ExecutedAt:        r.opts.now(),
		})
	})
}
