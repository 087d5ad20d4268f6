package promotion

import "time"

type serviceOptions struct {
	now               func() time.Time
	generateClaimCode func(promotionID int64, customerID string) string
	generatePromoCode func(prefix string) string
	renderOptions     RenderOptions
	runLeaseTTL       time.Duration

	maxDeliveryAttempts int
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		now:               time.Now,
		generateClaimCode: GenerateClaimCode,
		generatePromoCode: GeneratePromoCode,
		renderOptions: RenderOptions{
			BusinessName: "Our Team",
		},
		runLeaseTTL: 15 * time.Minute,

		maxDeliveryAttempts: 3,
	}
}

func newServiceOptions(options ...Option) serviceOptions {
	opts := defaultServiceOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *serviceOptions)

// WithNowFunc ...
func WithNowFunc(now func() time.Time) Option {
	return func(opts *serviceOptions) {
		opts.now = now
	}
}

// WithClaimCodeGenerator ...
func WithClaimCodeGenerator(fn func(promotionID int64, customerID string) string) Option {
	return func(opts *serviceOptions) {
		opts.generateClaimCode = fn
	}
}

// WithPromoCodeGenerator ...
func WithPromoCodeGenerator(fn func(prefix string) string) Option {
	return func(opts *serviceOptions) {
		opts.generatePromoCode = fn
	}
}

// WithRenderOptions ...
func WithRenderOptions(renderOpts RenderOptions) Option {
	return func(opts *serviceOptions) {
		opts.renderOptions = renderOpts
	}
}

// WithRunLeaseTTL is how long the run lease is held before expiring if the runner dies
func WithRunLeaseTTL(d time.Duration) Option {
	return func(opts *serviceOptions) {
		opts.runLeaseTTL = d
	}
}

// WithMaxDeliveryAttempts is how many times the worker tries a pending intent with a retryable failure
func WithMaxDeliveryAttempts(n int) Option {
	return func(opts *serviceOptions) {
		if n > 0 {
			opts.maxDeliveryAttempts = n
		}
	}
}
