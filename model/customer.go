package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is owned by the CRM, read only here
type Customer struct {
	ID             string          `db:"id"`
	Email          sql.NullString  `db:"email"`
	Phone          sql.NullString  `db:"phone"`
	DisplayName    string          `db:"display_name"`
	Birthday       sql.NullTime    `db:"birthday"`
	CustomerSince  sql.NullTime    `db:"customer_since"`
	LifetimeValue  decimal.Decimal `db:"lifetime_value"`
	LastActivityAt sql.NullTime    `db:"last_activity_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullCustomer ...
type NullCustomer struct {
	Valid    bool
	Customer Customer
}

// CohortCustomer is one customer matching a trigger's selection query
type CohortCustomer struct {
	CustomerID     string              `db:"id"`
	Email          sql.NullString      `db:"email"`
	Phone          sql.NullString      `db:"phone"`
	DisplayName    string              `db:"display_name"`
	LastActivityAt sql.NullTime        `db:"last_activity_at"`
	LifetimeValue  decimal.NullDecimal `db:"lifetime_value"`
	Birthday       sql.NullTime        `db:"birthday"`
	CustomerSince  sql.NullTime        `db:"customer_since"`
}
