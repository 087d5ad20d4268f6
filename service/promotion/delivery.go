package promotion

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/pkg/transport"
	"github.com/QuangTung97/promo-delivery/repository"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate otelwrap --out service_wrappers.go . IDeliverer IRunner

// ErrMissingEmail ...
var ErrMissingEmail = errors.New("customer has no email address")

// ErrMissingPhone ...
var ErrMissingPhone = errors.New("customer has no phone number")

// ErrUnknownChannel ...
var ErrUnknownChannel = errors.New("unknown delivery channel")

// IDeliverer delivers one promotion to one customer
type IDeliverer interface {
	Deliver(
		ctx context.Context, promo PromotionData, customer CustomerData, channels []model.DeliveryChannel,
	) DeliveryResults

	// DeliverChannel runs a single channel adapter, an empty claimCode means a fresh code is generated
	DeliverChannel(
		ctx context.Context, promo PromotionData, customer CustomerData,
		channel model.DeliveryChannel, claimCode string,
	) ChannelResult
}

// PromotionData is the part of a promotion needed for rendering and persisting deliveries
type PromotionData struct {
	ID              int64
	Title           string
	Description     string
	DiscountType    model.DiscountType
	DiscountValue   decimal.NullDecimal
	DiscountPercent decimal.NullDecimal
	FreeAddon       string
	PromoCode       string
	ValidFrom       time.Time
	ValidUntil      time.Time
}

// NewPromotionData ...
func NewPromotionData(p model.Promotion) PromotionData {
	return PromotionData{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DiscountType:    p.DiscountType,
		DiscountValue:   p.DiscountValue,
		DiscountPercent: p.DiscountPercent,
		FreeAddon:       p.FreeAddon.String,
		PromoCode:       p.PromoCode,
		ValidFrom:       p.ValidFrom,
		ValidUntil:      p.ValidUntil,
	}
}

// CustomerData ...
type CustomerData struct {
	ID    string
	Email string
	Phone string
	Name  string
}

// NewCustomerData ...
func NewCustomerData(c model.Customer) CustomerData {
	return CustomerData{
		ID:    c.ID,
		Email: c.Email.String,
		Phone: c.Phone.String,
		Name:  c.DisplayName,
	}
}

// ChannelResult is the outcome of one channel adapter
type ChannelResult struct {
	Channel          model.DeliveryChannel
	Success          bool
	ClaimCode        string
	AlreadyDelivered bool
	Error            string

	// Retryable is set for failures that may succeed on a later attempt
	Retryable bool
}

// DeliveryResults one result per requested channel, in request order
type DeliveryResults []ChannelResult

// Succeeded ...
func (r DeliveryResults) Succeeded() []model.DeliveryChannel {
	var result []model.DeliveryChannel
	for _, c := range r {
		if c.Success {
			result = append(result, c.Channel)
		}
	}
	return result
}

// Failed ...
func (r DeliveryResults) Failed() []model.DeliveryChannel {
	var result []model.DeliveryChannel
	for _, c := range r {
		if !c.Success {
			result = append(result, c.Channel)
		}
	}
	return result
}

// Get ...
func (r DeliveryResults) Get(channel model.DeliveryChannel) (ChannelResult, bool) {
	for _, c := range r {
		if c.Channel == channel {
			return c, true
		}
	}
	return ChannelResult{}, false
}

// Deliverer implements the channel adapters and the delivery orchestrator
type Deliverer struct {
	provider     repository.Provider
	deliveryRepo repository.Delivery
	preference   PreferenceChecker
	email        EmailSender
	sms          SMSSender

	opts serviceOptions
}

var _ IDeliverer = &Deliverer{}

// NewDeliverer ...
func NewDeliverer(
	provider repository.Provider, deliveryRepo repository.Delivery,
	preference PreferenceChecker, email EmailSender, sms SMSSender,
	options ...Option,
) *Deliverer {
	return &Deliverer{
		provider:     provider,
		deliveryRepo: deliveryRepo,
		preference:   preference,
		email:        email,
		sms:          sms,

		opts: newServiceOptions(options...),
	}
}

type channelAdapter struct {
	channel model.DeliveryChannel

	// nil for channels without opt-out
	checkPreference func(ctx context.Context, customerID string, category string) (Permission, error)

	// nil for channels without send step
	send func(ctx context.Context, promo PromotionData, customer CustomerData, claimCode string) error
}

type deliveryState struct {
	d        *Deliverer
	ctx      context.Context
	adapter  channelAdapter
	promo    PromotionData
	customer CustomerData

	claimCode        string
	alreadyDelivered bool

	finished  bool
	err       error
	permanent bool
}

func (s *deliveryState) setError(err error) {
	s.err = err
}

func (s *deliveryState) setPermanentError(err error) {
	s.err = err
	s.permanent = true
}

func (s *deliveryState) doNext(fn func()) {
	if s.err != nil || s.finished {
		return
	}
	fn()
}

func (s *deliveryState) checkExisting() {
	nullDelivery, err := s.d.deliveryRepo.FindDelivery(
		s.d.provider.Readonly(s.ctx), s.promo.ID, s.customer.ID, s.adapter.channel)
	if err != nil {
		s.setError(err)
		return
	}
	if !nullDelivery.Valid {
		return
	}

	s.claimCode = nullDelivery.Delivery.ClaimCode
	s.alreadyDelivered = true
	s.finished = true
}

func (s *deliveryState) checkPreference() {
	if s.adapter.checkPreference == nil {
		return
	}

	perm, err := s.adapter.checkPreference(s.ctx, s.customer.ID, model.PreferenceCategoryPromotional)
	if err != nil {
		s.setError(errors.Wrap(err, "check communication preference"))
		return
	}
	if !perm.Allowed {
		s.setPermanentError(errors.New(perm.Reason))
	}
}

func (s *deliveryState) resolveClaimCode() {
	if s.claimCode == "" {
		s.claimCode = s.d.opts.generateClaimCode(s.promo.ID, s.customer.ID)
	}
}

func (s *deliveryState) send() {
	if s.adapter.send == nil {
		return
	}
	err := s.adapter.send(s.ctx, s.promo, s.customer, s.claimCode)
	if err != nil {
		if isPermanentSendError(err) {
			s.setPermanentError(err)
			return
		}
		s.setError(err)
	}
}

// isPermanentSendError is true for missing contact details and provider 4xx responses other than 429
func isPermanentSendError(err error) bool {
	if errors.Is(err, ErrMissingEmail) || errors.Is(err, ErrMissingPhone) {
		return true
	}
	var statusErr *transport.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode < 500 && statusErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}

func (s *deliveryState) persist() {
	err := s.d.provider.Transact(s.ctx, func(ctx context.Context) error {
		stored, err := s.d.deliveryRepo.UpsertDelivery(ctx, model.Delivery{
			PromotionID: s.promo.ID,
			CustomerID:  s.customer.ID,
			Channel:     s.adapter.channel,
			ClaimCode:   s.claimCode,
			DeliveredAt: s.d.opts.now(),
		})
		if err != nil {
			return err
		}
		s.claimCode = stored.ClaimCode
		return nil
	})
	if err != nil {
		s.setError(err)
	}
}

func (s *deliveryState) result() ChannelResult {
	if s.err != nil {
		return ChannelResult{
			Channel:   s.adapter.channel,
			Success:   false,
			Error:     s.err.Error(),
			Retryable: !s.permanent,
		}
	}
	return ChannelResult{
		Channel:          s.adapter.channel,
		Success:          true,
		ClaimCode:        s.claimCode,
		AlreadyDelivered: s.alreadyDelivered,
	}
}

func (d *Deliverer) runAdapter(
	ctx context.Context, adapter channelAdapter,
	promo PromotionData, customer CustomerData, claimCode string,
) ChannelResult {
	state := &deliveryState{
		d:        d,
		ctx:      ctx,
		adapter:  adapter,
		promo:    promo,
		customer: customer,
	}

	state.doNext(state.checkExisting)
	state.doNext(state.checkPreference)
	state.doNext(func() {
		state.claimCode = claimCode
		state.resolveClaimCode()
	})
	state.doNext(state.send)
	state.doNext(state.persist)

	result := state.result()

	logger := otellib.Extract(ctx).With(
		zap.Int64("promotion_id", promo.ID),
		zap.String("customer_id", customer.ID),
		zap.String("channel", string(adapter.channel)),
	)
	switch {
	case result.AlreadyDelivered:
		deliveriesTotal.WithLabelValues(string(adapter.channel), resultSkipped).Inc()
		logger.Info("promotion already delivered", zap.String("claim_code", result.ClaimCode))
	case result.Success:
		deliveriesTotal.WithLabelValues(string(adapter.channel), resultSuccess).Inc()
		logger.Info("promotion delivered", zap.String("claim_code", result.ClaimCode))
	default:
		deliveriesTotal.WithLabelValues(string(adapter.channel), resultFailure).Inc()
		logger.Warn("promotion delivery failed", zap.String("error", result.Error))
	}
	return result
}

func (d *Deliverer) portalAdapter() channelAdapter {
	return channelAdapter{
		channel: model.DeliveryChannelPortal,
	}
}

func (d *Deliverer) emailAdapter() channelAdapter {
	return channelAdapter{
		channel:         model.DeliveryChannelEmail,
		checkPreference: d.preference.CanSendEmail,
		send:            d.sendEmail,
	}
}

func (d *Deliverer) smsAdapter() channelAdapter {
	return channelAdapter{
		channel:         model.DeliveryChannelSMS,
		checkPreference: d.preference.CanSendSMS,
		send:            d.sendSMS,
	}
}

func (d *Deliverer) sendEmail(ctx context.Context, promo PromotionData, customer CustomerData, claimCode string) error {
	if customer.Email == "" {
		return ErrMissingEmail
	}

	email, err := RenderEmail(d.opts.renderOptions, promo, customer, claimCode)
	if err != nil {
		return errors.Wrap(err, "render email")
	}
	return d.email.SendCustomEmail(ctx, customer.Email, email.Subject, email.HTML)
}

func (d *Deliverer) sendSMS(ctx context.Context, promo PromotionData, customer CustomerData, claimCode string) error {
	if customer.Phone == "" {
		return ErrMissingPhone
	}

	return d.sms.SendSMS(ctx, transport.SMSMessage{
		To:         customer.Phone,
		Message:    RenderSMS(d.opts.renderOptions, promo, claimCode),
		CustomerID: customer.ID,
		Metadata: map[string]string{
			"promotion_id": strconv.FormatInt(promo.ID, 10),
			"claim_code":   claimCode,
		},
	})
}

// DeliverViaPortal makes the promotion visible in the customer portal, no opt-out applies
func (d *Deliverer) DeliverViaPortal(
	ctx context.Context, promo PromotionData, customer CustomerData, claimCode string,
) ChannelResult {
	return d.runAdapter(ctx, d.portalAdapter(), promo, customer, claimCode)
}

// DeliverViaEmail ...
func (d *Deliverer) DeliverViaEmail(
	ctx context.Context, promo PromotionData, customer CustomerData, claimCode string,
) ChannelResult {
	return d.runAdapter(ctx, d.emailAdapter(), promo, customer, claimCode)
}

// DeliverViaSMS ...
func (d *Deliverer) DeliverViaSMS(
	ctx context.Context, promo PromotionData, customer CustomerData, claimCode string,
) ChannelResult {
	return d.runAdapter(ctx, d.smsAdapter(), promo, customer, claimCode)
}

// DeliverChannel ...
func (d *Deliverer) DeliverChannel(
	ctx context.Context, promo PromotionData, customer CustomerData,
	channel model.DeliveryChannel, claimCode string,
) ChannelResult {
	switch channel {
	case model.DeliveryChannelPortal:
		return d.DeliverViaPortal(ctx, promo, customer, claimCode)
	case model.DeliveryChannelEmail:
		return d.DeliverViaEmail(ctx, promo, customer, claimCode)
	case model.DeliveryChannelSMS:
		return d.DeliverViaSMS(ctx, promo, customer, claimCode)
	default:
		deliveriesTotal.WithLabelValues("unknown", resultFailure).Inc()
		return ChannelResult{
			Channel: channel,
			Success: false,
			Error:   errors.Wrapf(ErrUnknownChannel, "channel %q", channel).Error(),
		}
	}
}

// claimCodeCandidate reuses the code of any channel the customer already received this promotion on
func (d *Deliverer) claimCodeCandidate(ctx context.Context, promo PromotionData, customer CustomerData) string {
	deliveries, err := d.deliveryRepo.FindCustomerDeliveries(d.provider.Readonly(ctx), promo.ID, customer.ID)
	if err != nil {
		otellib.Extract(ctx).Warn("find customer deliveries", zap.Error(err))
	}
	for _, delivery := range deliveries {
		if delivery.ClaimCode != "" {
			return delivery.ClaimCode
		}
	}
	return d.opts.generateClaimCode(promo.ID, customer.ID)
}

// Deliver runs the adapters of channels sequentially, a failed channel never stops the others
func (d *Deliverer) Deliver(
	ctx context.Context, promo PromotionData, customer CustomerData, channels []model.DeliveryChannel,
) DeliveryResults {
	claimCode := d.claimCodeCandidate(ctx, promo, customer)

	results := make(DeliveryResults, 0, len(channels))
	for _, channel := range channels {
		results = append(results, d.DeliverChannel(ctx, promo, customer, channel, claimCode))
	}
	return results
}
