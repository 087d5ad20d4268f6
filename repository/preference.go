package repository

import (
	"context"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/pkg/errors"
)

// Preference reads communication preferences owned by the CRM
type Preference interface {
	// GetPreferences returns the rows of the category and the "all" category
	GetPreferences(
		ctx context.Context, customerID string, channel model.DeliveryChannel, category string,
	) ([]model.CommunicationPreference, error)
	UpsertPreference(ctx context.Context, pref model.CommunicationPreference) error
}

type preferenceImpl struct {
}

// NewPreference ...
func NewPreference() Preference {
	return &preferenceImpl{}
}

// GetPreferences ...
func (p *preferenceImpl) GetPreferences(
	ctx context.Context, customerID string, channel model.DeliveryChannel, category string,
) ([]model.CommunicationPreference, error) {
	query := `
SELECT customer_id, channel, category, opted_out, created_at, updated_at
FROM communication_preference
WHERE customer_id = ? AND channel = ? AND category IN (?, ?)
ORDER BY category
`
	var result []model.CommunicationPreference
	err := GetReadonly(ctx).SelectContext(ctx, &result, query,
		customerID, channel, category, model.PreferenceCategoryAll)
	if err != nil {
		return nil, errors.Wrap(err, "get preferences")
	}
	return result, nil
}

// UpsertPreference is used for seeding and tests
func (p *preferenceImpl) UpsertPreference(ctx context.Context, pref model.CommunicationPreference) error {
	query := `
INSERT INTO communication_preference (
	customer_id, channel, category, opted_out
) VALUES (
	:customer_id, :channel, :category, :opted_out
) AS NEW
ON DUPLICATE KEY UPDATE opted_out = NEW.opted_out
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, pref)
	if err != nil {
		return errors.Wrap(err, "upsert preference")
	}
	return nil
}
