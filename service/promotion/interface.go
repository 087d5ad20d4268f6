package promotion

import (
	"context"
	"time"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/transport"
)

//go:generate moq -out promotion_mocks_test.go . EmailSender SMSSender PreferenceChecker RunLocker DeliveryQueue TriggerProcessor IDeliverer IRunner IWorker

// EmailSender ...
type EmailSender interface {
	SendCustomEmail(ctx context.Context, to string, subject string, html string) error
}

// SMSSender ...
type SMSSender interface {
	SendSMS(ctx context.Context, msg transport.SMSMessage) error
}

// Permission is the answer of the preference checker
type Permission struct {
	Allowed bool
	Reason  string
}

// PreferenceChecker ...
type PreferenceChecker interface {
	CanSendEmail(ctx context.Context, customerID string, category string) (Permission, error)
	CanSendSMS(ctx context.Context, customerID string, category string) (Permission, error)
}

// RunLocker serializes trigger runs across instances
type RunLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// DeliveryQueue fans a promotion out into pending delivery intents
type DeliveryQueue interface {
	QueueDeliveries(
		ctx context.Context, promotionID int64, customerIDs []string, channels []model.DeliveryChannel,
	) QueueResult
}

var _ EmailSender = &transport.EmailClient{}
var _ SMSSender = &transport.SMSClient{}

type noopLocker struct {
}

// NewNoopLocker returns a locker that always grants the lock
func NewNoopLocker() RunLocker {
	return noopLocker{}
}

func (noopLocker) TryLock(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

func (noopLocker) Unlock(context.Context, string) error {
	return nil
}
