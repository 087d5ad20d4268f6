package promotion

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/repository"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultDaysInactive = 180
	defaultDaysAhead    = 7
	defaultValidDays    = 30
)

var defaultMinLifetimeValue = decimal.NewFromInt(1000)

// highValueCooldown customers of a high value trigger are not targeted again within this window
const highValueCooldown = 30 * 24 * time.Hour

// TriggerResult ...
type TriggerResult struct {
	TriggerID         int64
	TriggerName       string
	TriggerType       model.TriggerType
	Success           bool
	CustomersFound    int
	PromotionsCreated int
	DeliveriesQueued  int
	PromotionID       int64
	Errors            []string
}

// TriggerEvaluator evaluates one trigger: cohort, promotion, queued intents and the automated delivery log
type TriggerEvaluator struct {
	provider      repository.Provider
	cohortRepo    repository.Cohort
	promotionRepo repository.Promotion
	triggerRepo   repository.Trigger
	queue         DeliveryQueue

	opts serviceOptions
}

// NewTriggerEvaluator ...
func NewTriggerEvaluator(
	provider repository.Provider,
	cohortRepo repository.Cohort,
	promotionRepo repository.Promotion,
	triggerRepo repository.Trigger,
	queue DeliveryQueue,
	options ...Option,
) *TriggerEvaluator {
	return &TriggerEvaluator{
		provider:      provider,
		cohortRepo:    cohortRepo,
		promotionRepo: promotionRepo,
		triggerRepo:   triggerRepo,
		queue:         queue,

		opts: newServiceOptions(options...),
	}
}

type cohortSelector func(ctx context.Context, now time.Time, limit uint64) ([]model.CohortCustomer, error)

type evaluation struct {
	defaultChannels []model.DeliveryChannel
	selectCohort    cohortSelector
	codePrefix      string
	cooldown        time.Duration
}

type evaluationState struct {
	e       *TriggerEvaluator
	ctx     context.Context
	trigger model.Trigger
	eval    evaluation
	now     time.Time

	customerIDs []string
	promotionID int64
	result      TriggerResult

	finished bool
	err      error
}

func (s *evaluationState) setError(err error) {
	s.err = err
}

func (s *evaluationState) doNext(fn func()) {
	if s.err != nil || s.finished {
		return
	}
	fn()
}

func (s *evaluationState) maxCustomers() uint64 {
	maxCustomers := s.trigger.Conditions.MaxCustomers
	if maxCustomers == nil || *maxCustomers <= 0 {
		return 0
	}
	return uint64(*maxCustomers)
}

func (s *evaluationState) fetchCohort() {
	customers, err := s.eval.selectCohort(s.e.provider.Readonly(s.ctx), s.now, s.maxCustomers())
	if err != nil {
		s.setError(errors.Wrap(err, "fetch cohort"))
		return
	}

	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.CustomerID)
	}
	s.customerIDs = uniqueStrings(ids)
	s.finishIfEmpty()
}

func (s *evaluationState) finishIfEmpty() {
	if len(s.customerIDs) == 0 {
		s.finished = true
	}
}

func (s *evaluationState) applyCooldown() {
	if s.eval.cooldown <= 0 {
		return
	}

	recent, err := s.e.triggerRepo.SelectRecentlyTriggeredCustomers(
		s.e.provider.Readonly(s.ctx), s.trigger.ID, s.customerIDs, s.now.Add(-s.eval.cooldown))
	if err != nil {
		s.setError(errors.Wrap(err, "check trigger cooldown"))
		return
	}

	recentSet := make(map[string]struct{}, len(recent))
	for _, id := range recent {
		recentSet[id] = struct{}{}
	}

	remaining := make([]string, 0, len(s.customerIDs))
	for _, id := range s.customerIDs {
		if _, existed := recentSet[id]; existed {
			continue
		}
		remaining = append(remaining, id)
	}

	if len(remaining) < len(s.customerIDs) {
		otellib.Extract(s.ctx).Info("customers excluded by trigger cooldown",
			zap.Int64("trigger_id", s.trigger.ID),
			zap.Int("excluded", len(s.customerIDs)-len(remaining)),
		)
	}

	s.customerIDs = remaining
	s.finishIfEmpty()
}

func (s *evaluationState) countCustomers() {
	s.result.CustomersFound = len(s.customerIDs)
}

func (s *evaluationState) createPromotion() {
	promo, err := s.e.promotionFromTemplate(s.trigger, s.eval.codePrefix, s.now)
	if err != nil {
		s.setError(err)
		return
	}

	err = s.e.provider.Transact(s.ctx, func(ctx context.Context) error {
		id, err := s.e.promotionRepo.InsertPromotion(ctx, promo)
		if err != nil {
			return err
		}
		s.promotionID = id
		return nil
	})
	if err != nil {
		s.setError(errors.Wrap(err, "create promotion"))
		return
	}

	s.result.PromotionID = s.promotionID
	s.result.PromotionsCreated = 1
}

func (s *evaluationState) channels() []model.DeliveryChannel {
	if len(s.trigger.DeliveryChannels) > 0 {
		return s.trigger.DeliveryChannels
	}
	return s.eval.defaultChannels
}

func (s *evaluationState) queueDeliveries() {
	queueResult := s.e.queue.QueueDeliveries(s.ctx, s.promotionID, s.customerIDs, s.channels())
	s.result.DeliveriesQueued = queueResult.Queued
	if len(queueResult.Errors) > 0 {
		s.setError(errors.New("queue deliveries: " + strings.Join(queueResult.Errors, "; ")))
	}
}

func (s *evaluationState) logAutomatedDeliveries() {
	logs := make([]model.AutomatedDelivery, 0, len(s.customerIDs))
	for _, id := range s.customerIDs {
		logs = append(logs, model.AutomatedDelivery{
			TriggerID:   s.trigger.ID,
			CustomerID:  id,
			PromotionID: s.promotionID,
			TriggeredAt: s.now,
		})
	}

	err := s.e.provider.Transact(s.ctx, func(ctx context.Context) error {
		return s.e.triggerRepo.InsertAutomatedDeliveries(ctx, logs)
	})
	if err != nil {
		s.setError(errors.Wrap(err, "log automated deliveries"))
	}
}

func (s *evaluationState) finalResult() TriggerResult {
	result := s.result
	result.TriggerID = s.trigger.ID
	result.TriggerName = s.trigger.Name
	result.TriggerType = s.trigger.TriggerType
	result.Success = s.err == nil
	if s.err != nil {
		result.Errors = append(result.Errors, s.err.Error())
	}
	return result
}

func (e *TriggerEvaluator) evaluate(ctx context.Context, trigger model.Trigger, eval evaluation) TriggerResult {
	state := &evaluationState{
		e:       e,
		ctx:     ctx,
		trigger: trigger,
		eval:    eval,
		now:     e.opts.now(),
	}

	state.doNext(state.fetchCohort)
	state.doNext(state.applyCooldown)
	state.doNext(state.countCustomers)
	state.doNext(state.createPromotion)
	state.doNext(state.queueDeliveries)
	state.doNext(state.logAutomatedDeliveries)

	result := state.finalResult()

	triggerCustomersFoundTotal.WithLabelValues(string(trigger.TriggerType)).Add(float64(result.CustomersFound))

	logger := otellib.Extract(ctx).With(
		zap.Int64("trigger_id", trigger.ID),
		zap.String("trigger_type", string(trigger.TriggerType)),
		zap.Int("customers_found", result.CustomersFound),
		zap.Int("deliveries_queued", result.DeliveriesQueued),
	)
	if result.Success {
		logger.Info("trigger evaluated")
	} else {
		logger.Error("trigger evaluation failed", zap.Strings("errors", result.Errors))
	}
	return result
}

func (e *TriggerEvaluator) promotionFromTemplate(
	trigger model.Trigger, defaultPrefix string, now time.Time,
) (model.Promotion, error) {
	tmpl := trigger.Template

	switch tmpl.DiscountType {
	case model.DiscountTypeValue, model.DiscountTypePercentage, model.DiscountTypeFreeAddon:
	default:
		return model.Promotion{}, fmt.Errorf("promotion template: invalid discount type %q", tmpl.DiscountType)
	}

	title := tmpl.Title
	if title == "" {
		title = trigger.Name
	}

	validDays := tmpl.ValidDays
	if validDays <= 0 {
		validDays = defaultValidDays
	}

	prefix := tmpl.CodePrefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	promo := model.Promotion{
		TriggerID:      sql.NullInt64{Valid: true, Int64: trigger.ID},
		Title:          title,
		Description:    tmpl.Description,
		DiscountType:   tmpl.DiscountType,
		FreeAddon:      nullString(tmpl.FreeAddon),
		TargetAudience: tmpl.TargetAudience,
		PromoCode:      e.opts.generatePromoCode(prefix),
		Status:         model.PromotionStatusActive,
		ValidFrom:      now,
		ValidUntil:     now.AddDate(0, 0, validDays),
	}
	if tmpl.DiscountValue != nil {
		promo.DiscountValue = decimal.NullDecimal{Valid: true, Decimal: *tmpl.DiscountValue}
	}
	if tmpl.DiscountPercent != nil {
		promo.DiscountPercent = decimal.NullDecimal{Valid: true, Decimal: *tmpl.DiscountPercent}
	}
	if tmpl.MaxRedemptions != nil {
		promo.MaxRedemptions = sql.NullInt64{Valid: true, Int64: *tmpl.MaxRedemptions}
	}
	return promo, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: s}
}

func intOrDefault(v *int, defaultValue int) int {
	if v == nil || *v <= 0 {
		return defaultValue
	}
	return *v
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// upcomingMonthDays returns the days of [today, today + daysAhead],
// in a non-leap year 02-29 is matched together with 02-28
func upcomingMonthDays(now time.Time, daysAhead int) []repository.MonthDay {
	result := make([]repository.MonthDay, 0, daysAhead+2)
	for i := 0; i <= daysAhead; i++ {
		day := now.AddDate(0, 0, i)
		result = append(result, repository.NewMonthDay(day))
		if day.Month() == time.February && day.Day() == 28 && !isLeapYear(day.Year()) {
			result = append(result, "02-29")
		}
	}
	return result
}

// upcomingWindowCooldown keeps a customer from being targeted again while the same date is still in the window
func upcomingWindowCooldown(daysAhead int) time.Duration {
	return time.Duration(daysAhead+1) * 24 * time.Hour
}

// ProcessInactiveTrigger targets customers without activity in days_inactive days
func (e *TriggerEvaluator) ProcessInactiveTrigger(ctx context.Context, trigger model.Trigger) TriggerResult {
	daysInactive := intOrDefault(trigger.Conditions.DaysInactive, defaultDaysInactive)

	return e.evaluate(ctx, trigger, evaluation{
		defaultChannels: []model.DeliveryChannel{model.DeliveryChannelEmail},
		codePrefix:      "WINBACK",
		selectCohort: func(ctx context.Context, now time.Time, limit uint64) ([]model.CohortCustomer, error) {
			return e.cohortRepo.SelectInactiveCustomers(ctx, now.AddDate(0, 0, -daysInactive), limit)
		},
	})
}

// ProcessBirthdayTrigger targets customers with a birthday in the upcoming window,
// once per window thanks to the automated delivery log
func (e *TriggerEvaluator) ProcessBirthdayTrigger(ctx context.Context, trigger model.Trigger) TriggerResult {
	daysAhead := intOrDefault(trigger.Conditions.DaysAhead, defaultDaysAhead)

	return e.evaluate(ctx, trigger, evaluation{
		defaultChannels: []model.DeliveryChannel{model.DeliveryChannelEmail, model.DeliveryChannelSMS},
		codePrefix:      "BDAY",
		cooldown:        upcomingWindowCooldown(daysAhead),
		selectCohort: func(ctx context.Context, now time.Time, limit uint64) ([]model.CohortCustomer, error) {
			return e.cohortRepo.SelectBirthdayCustomers(ctx, upcomingMonthDays(now, daysAhead), limit)
		},
	})
}

// ProcessAnniversaryTrigger targets customers of at least one year with an anniversary in the upcoming window
func (e *TriggerEvaluator) ProcessAnniversaryTrigger(ctx context.Context, trigger model.Trigger) TriggerResult {
	daysAhead := intOrDefault(trigger.Conditions.DaysAhead, defaultDaysAhead)

	return e.evaluate(ctx, trigger, evaluation{
		defaultChannels: []model.DeliveryChannel{model.DeliveryChannelEmail},
		codePrefix:      "ANNIV",
		cooldown:        upcomingWindowCooldown(daysAhead),
		selectCohort: func(ctx context.Context, now time.Time, limit uint64) ([]model.CohortCustomer, error) {
			return e.cohortRepo.SelectAnniversaryCustomers(ctx,
				upcomingMonthDays(now, daysAhead), now.AddDate(-1, 0, 0), limit)
		},
	})
}

// ProcessHighValueTrigger targets customers with lifetime value at least min_lifetime_value,
// skipping customers targeted by the same trigger in the last 30 days
func (e *TriggerEvaluator) ProcessHighValueTrigger(ctx context.Context, trigger model.Trigger) TriggerResult {
	minValue := defaultMinLifetimeValue
	if trigger.Conditions.MinLifetimeValue != nil {
		minValue = *trigger.Conditions.MinLifetimeValue
	}

	return e.evaluate(ctx, trigger, evaluation{
		defaultChannels: []model.DeliveryChannel{model.DeliveryChannelEmail},
		codePrefix:      "VIP",
		cooldown:        highValueCooldown,
		selectCohort: func(ctx context.Context, _ time.Time, limit uint64) ([]model.CohortCustomer, error) {
			return e.cohortRepo.SelectHighValueCustomers(ctx, minValue, limit)
		},
	})
}
