package promotion

import (
	"context"
	"fmt"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/memtable"
	"github.com/QuangTung97/promo-delivery/repository"
)

type preferenceChecker struct {
	provider repository.Provider
	repo     repository.Preference
	cache    *memtable.MemTable
}

var _ PreferenceChecker = &preferenceChecker{}

// NewPreferenceChecker creates a checker reading communication_preference, cache can be nil
func NewPreferenceChecker(
	provider repository.Provider, repo repository.Preference, cache *memtable.MemTable,
) PreferenceChecker {
	return &preferenceChecker{
		provider: provider,
		repo:     repo,
		cache:    cache,
	}
}

func preferenceCacheKey(customerID string, channel model.DeliveryChannel, category string) string {
	return fmt.Sprintf("pref:%s:%s:%s", channel, category, customerID)
}

func (c *preferenceChecker) isOptedOut(
	ctx context.Context, customerID string, channel model.DeliveryChannel, category string,
) (bool, error) {
	key := preferenceCacheKey(customerID, channel, category)
	if c.cache != nil {
		if optedOut, ok := c.cache.GetFlag(key); ok && optedOut {
			return true, nil
		}
	}

	prefs, err := c.repo.GetPreferences(c.provider.Readonly(ctx), customerID, channel, category)
	if err != nil {
		return false, err
	}

	optedOut := false
	for _, p := range prefs {
		if p.OptedOut {
			optedOut = true
		}
	}

	// only opt-outs are cached, a stale entry can delay a send but never allow one
	if c.cache != nil && optedOut {
		c.cache.SetFlag(key, true)
	}
	return optedOut, nil
}

func (c *preferenceChecker) check(
	ctx context.Context, customerID string, channel model.DeliveryChannel, category string, name string,
) (Permission, error) {
	optedOut, err := c.isOptedOut(ctx, customerID, channel, category)
	if err != nil {
		return Permission{}, err
	}
	if optedOut {
		return Permission{
			Allowed: false,
			Reason:  fmt.Sprintf("customer has opted out of %s %s", category, name),
		}, nil
	}
	return Permission{Allowed: true}, nil
}

// CanSendEmail ...
func (c *preferenceChecker) CanSendEmail(ctx context.Context, customerID string, category string) (Permission, error) {
	return c.check(ctx, customerID, model.DeliveryChannelEmail, category, "emails")
}

// CanSendSMS ...
func (c *preferenceChecker) CanSendSMS(ctx context.Context, customerID string, category string) (Permission, error) {
	return c.check(ctx, customerID, model.DeliveryChannelSMS, category, "SMS")
}
