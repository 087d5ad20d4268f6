package promotion

import (
	"context"

	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/repository"
	"go.uber.org/zap"
)

// Expirer ...
type Expirer struct {
	provider      repository.Provider
	promotionRepo repository.Promotion

	opts serviceOptions
}

// NewExpirer ...
func NewExpirer(provider repository.Provider, promotionRepo repository.Promotion, options ...Option) *Expirer {
	return &Expirer{
		provider:      provider,
		promotionRepo: promotionRepo,
		opts:          newServiceOptions(options...),
	}
}

// ExpirePromotions marks active promotions past their validity window as expired
func (e *Expirer) ExpirePromotions(ctx context.Context) (int64, error) {
	var affected int64
	err := e.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		affected, err = e.promotionRepo.ExpirePromotions(ctx, e.opts.now())
		return err
	})
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		otellib.Extract(ctx).Info("expired promotions", zap.Int64("count", affected))
	}
	return affected, nil
}
