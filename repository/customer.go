package repository

import (
	"context"
	"database/sql"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/pkg/errors"
)

// Customer ...
type Customer interface {
	GetCustomer(ctx context.Context, id string) (model.NullCustomer, error)
	UpsertCustomer(ctx context.Context, customer model.Customer) error
}

type customerImpl struct {
}

// NewCustomer ...
func NewCustomer() Customer {
	return &customerImpl{}
}

// GetCustomer ...
func (c *customerImpl) GetCustomer(ctx context.Context, id string) (model.NullCustomer, error) {
	query := `
SELECT id, email, phone, display_name, birthday, customer_since, lifetime_value, last_activity_at,
	created_at, updated_at
FROM customer WHERE id = ?
`
	var customer model.Customer
	err := GetReadonly(ctx).GetContext(ctx, &customer, query, id)
	if err == sql.ErrNoRows {
		return model.NullCustomer{}, nil
	}
	if err != nil {
		return model.NullCustomer{}, errors.Wrap(err, "get customer")
	}
	return model.NullCustomer{Valid: true, Customer: customer}, nil
}

// UpsertCustomer is used for seeding and tests, customers are owned by the CRM
func (c *customerImpl) UpsertCustomer(ctx context.Context, customer model.Customer) error {
	query := `
INSERT INTO customer (
	id, email, phone, display_name, birthday, customer_since, lifetime_value, last_activity_at
) VALUES (
	:id, :email, :phone, :display_name, :birthday, :customer_since, :lifetime_value, :last_activity_at
) AS NEW
ON DUPLICATE KEY UPDATE
	email = NEW.email,
	phone = NEW.phone,
	display_name = NEW.display_name,
	birthday = NEW.birthday,
	customer_since = NEW.customer_since,
	lifetime_value = NEW.lifetime_value,
	last_activity_at = NEW.last_activity_at
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, customer)
	if err != nil {
		return errors.Wrap(err, "upsert customer")
	}
	return nil
}
