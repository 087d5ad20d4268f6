package promotion

import (
	"context"
	"sync"
	"time"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/repository"
	"github.com/shopspring/decimal"
)

func newContext() context.Context {
	return context.Background()
}

var testNow = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

func newProviderMock() *repository.ProviderMock {
	return &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func newTestPromotion() model.Promotion {
	return model.Promotion{
		ID:              21,
		Title:           "We Miss You",
		Description:     "Come back for a tune-up",
		DiscountType:    model.DiscountTypePercentage,
		DiscountPercent: decimal.NullDecimal{Valid: true, Decimal: decimal.NewFromInt(15)},
		PromoCode:       "WINBACK-ABCD2345",
		Status:          model.PromotionStatusActive,
		ValidFrom:       testNow.AddDate(0, 0, -1),
		ValidUntil:      testNow.AddDate(0, 0, 29),
	}
}

func newTestPromotionData() PromotionData {
	return NewPromotionData(newTestPromotion())
}

func newTestCustomerData() CustomerData {
	return CustomerData{
		ID:    "customer-01",
		Email: "jane@example.com",
		Phone: "+15550001111",
		Name:  "Jane Doe",
	}
}

type memoryDeliveryStore struct {
	mut  sync.Mutex
	rows []model.Delivery
}

func (s *memoryDeliveryStore) find(promotionID int64, customerID string, channel model.DeliveryChannel) (model.Delivery, bool) {
	for _, row := range s.rows {
		if row.PromotionID == promotionID && row.CustomerID == customerID && row.Channel == channel {
			return row, true
		}
	}
	return model.Delivery{}, false
}

// newMemoryDeliveryRepo behaves like the unique key with upsert of promotion_delivery
func newMemoryDeliveryRepo() (*repository.DeliveryMock, *memoryDeliveryStore) {
	store := &memoryDeliveryStore{}
	repo := &repository.DeliveryMock{
		FindDeliveryFunc: func(
			ctx context.Context, promotionID int64, customerID string, channel model.DeliveryChannel,
		) (model.NullDelivery, error) {
			store.mut.Lock()
			defer store.mut.Unlock()

			row, ok := store.find(promotionID, customerID, channel)
			return model.NullDelivery{Valid: ok, Delivery: row}, nil
		},
		FindCustomerDeliveriesFunc: func(
			ctx context.Context, promotionID int64, customerID string,
		) ([]model.Delivery, error) {
			store.mut.Lock()
			defer store.mut.Unlock()

			var result []model.Delivery
			for _, row := range store.rows {
				if row.PromotionID == promotionID && row.CustomerID == customerID {
					result = append(result, row)
				}
			}
			return result, nil
		},
		UpsertDeliveryFunc: func(ctx context.Context, delivery model.Delivery) (model.Delivery, error) {
			store.mut.Lock()
			defer store.mut.Unlock()

			row, ok := store.find(delivery.PromotionID, delivery.CustomerID, delivery.Channel)
			if ok {
				return row, nil
			}
			delivery.ID = int64(len(store.rows) + 1)
			store.rows = append(store.rows, delivery)
			return delivery, nil
		},
	}
	return repo, store
}

func sequenceClaimCodes(codes ...string) func(promotionID int64, customerID string) string {
	var mut sync.Mutex
	index := 0
	return func(promotionID int64, customerID string) string {
		mut.Lock()
		defer mut.Unlock()

		code := codes[index%len(codes)]
		index++
		return code
	}
}
