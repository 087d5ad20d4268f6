package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MonthDay is a day of the year formatted as "MM-DD"
type MonthDay string

// NewMonthDay ...
func NewMonthDay(t time.Time) MonthDay {
	return MonthDay(t.Format("01-02"))
}

// Cohort selects the customers matching trigger rules
type Cohort interface {
	SelectInactiveCustomers(ctx context.Context, inactiveSince time.Time, limit uint64) ([]model.CohortCustomer, error)
	SelectBirthdayCustomers(ctx context.Context, days []MonthDay, limit uint64) ([]model.CohortCustomer, error)

	// SelectAnniversaryCustomers only returns customers that became customers before joinedBefore
	SelectAnniversaryCustomers(
		ctx context.Context, days []MonthDay, joinedBefore time.Time, limit uint64,
	) ([]model.CohortCustomer, error)
	SelectHighValueCustomers(
		ctx context.Context, minLifetimeValue decimal.Decimal, limit uint64,
	) ([]model.CohortCustomer, error)
}

type cohortImpl struct {
}

// NewCohort ...
func NewCohort() Cohort {
	return &cohortImpl{}
}

const selectCohortColumns = `SELECT id, email, phone, display_name, last_activity_at,
	lifetime_value, birthday, customer_since
FROM customer`

// noLimit is used when the trigger does not cap its cohort
const noLimit = uint64(1) << 62

func normalizeLimit(limit uint64) uint64 {
	if limit == 0 {
		return noLimit
	}
	return limit
}

// SelectInactiveCustomers ...
func (c *cohortImpl) SelectInactiveCustomers(
	ctx context.Context, inactiveSince time.Time, limit uint64,
) ([]model.CohortCustomer, error) {
	query := selectCohortColumns + `
WHERE last_activity_at IS NOT NULL AND last_activity_at < ?
ORDER BY last_activity_at, id
LIMIT ?
`
	var result []model.CohortCustomer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, inactiveSince, normalizeLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "select inactive customers")
	}
	return result, nil
}

func (c *cohortImpl) selectByMonthDay(
	ctx context.Context, column string, days []MonthDay, extraCond string, extraArgs []interface{}, limit uint64,
) ([]model.CohortCustomer, error) {
	if len(days) == 0 {
		return nil, nil
	}

	args := []interface{}{days}
	args = append(args, extraArgs...)
	args = append(args, normalizeLimit(limit))

	query, args, err := sqlx.In(selectCohortColumns+`
WHERE `+column+` IS NOT NULL AND DATE_FORMAT(`+column+`, '%m-%d') IN (?)`+extraCond+`
ORDER BY id
LIMIT ?
`, args...)
	if err != nil {
		return nil, err
	}

	db := GetReadonly(ctx)

	var result []model.CohortCustomer
	err = db.SelectContext(ctx, &result, db.Rebind(query), args...)
	return result, err
}

// SelectBirthdayCustomers ...
func (c *cohortImpl) SelectBirthdayCustomers(
	ctx context.Context, days []MonthDay, limit uint64,
) ([]model.CohortCustomer, error) {
	result, err := c.selectByMonthDay(ctx, "birthday", days, "", nil, limit)
	if err != nil {
		return nil, errors.Wrap(err, "select birthday customers")
	}
	return result, nil
}

// SelectAnniversaryCustomers ...
func (c *cohortImpl) SelectAnniversaryCustomers(
	ctx context.Context, days []MonthDay, joinedBefore time.Time, limit uint64,
) ([]model.CohortCustomer, error) {
	result, err := c.selectByMonthDay(ctx, "customer_since", days,
		" AND customer_since <= ?", []interface{}{joinedBefore}, limit)
	if err != nil {
		return nil, errors.Wrap(err, "select anniversary customers")
	}
	return result, nil
}

// SelectHighValueCustomers ...
func (c *cohortImpl) SelectHighValueCustomers(
	ctx context.Context, minLifetimeValue decimal.Decimal, limit uint64,
) ([]model.CohortCustomer, error) {
	query := selectCohortColumns + `
WHERE lifetime_value >= ?
ORDER BY lifetime_value DESC, id
LIMIT ?
`
	var result []model.CohortCustomer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, minLifetimeValue, normalizeLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "select high value customers")
	}
	return result, nil
}
