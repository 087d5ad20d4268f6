package promotion

import (
	"strings"
	"testing"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDescribeDiscount(t *testing.T) {
	table := []struct {
		name     string
		promo    PromotionData
		expected string
	}{
		{
			name: "value",
			promo: PromotionData{
				DiscountType:  model.DiscountTypeValue,
				DiscountValue: decimal.NullDecimal{Valid: true, Decimal: decimal.NewFromInt(25)},
			},
			expected: "$25.00 off",
		},
		{
			name: "percentage",
			promo: PromotionData{
				DiscountType:    model.DiscountTypePercentage,
				DiscountPercent: decimal.NullDecimal{Valid: true, Decimal: decimal.RequireFromString("12.5")},
			},
			expected: "12.5% off",
		},
		{
			name: "free-addon",
			promo: PromotionData{
				DiscountType: model.DiscountTypeFreeAddon,
				FreeAddon:    "filter replacement",
			},
			expected: "Free filter replacement",
		},
		{
			name: "missing-value",
			promo: PromotionData{
				DiscountType: model.DiscountTypeValue,
			},
			expected: "Special offer",
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			assert.Equal(t, e.expected, DescribeDiscount(e.promo))
		})
	}
}

func TestRenderEmail(t *testing.T) {
	promo := newTestPromotionData()
	promo.Title = "Spring <Sale> & More"

	email, err := RenderEmail(RenderOptions{
		BusinessName:  "Acme Plumbing",
		PortalBaseURL: "https://portal.example.com/",
	}, promo, newTestCustomerData(), "PROMO-AAAA1111")
	assert.Equal(t, nil, err)

	assert.Equal(t, "Acme Plumbing: Spring <Sale> & More", email.Subject)
	assert.True(t, strings.Contains(email.HTML, "Spring &lt;Sale&gt; &amp; More"))
	assert.True(t, strings.Contains(email.HTML, "Hi Jane,"))
	assert.True(t, strings.Contains(email.HTML, "PROMO-AAAA1111"))
	assert.True(t, strings.Contains(email.HTML, "15% off"))
	assert.True(t, strings.Contains(email.HTML, "Valid until Apr 8, 2026."))
	assert.True(t, strings.Contains(email.HTML, "https://portal.example.com/promotions?code=PROMO-AAAA1111"))
}

func TestRenderEmail__Without_Name_And_Portal(t *testing.T) {
	customer := newTestCustomerData()
	customer.Name = "  "

	email, err := RenderEmail(RenderOptions{BusinessName: "Acme"}, newTestPromotionData(), customer, "PROMO-AAAA1111")
	assert.Equal(t, nil, err)
	assert.True(t, strings.Contains(email.HTML, "Hi there,"))
	assert.False(t, strings.Contains(email.HTML, "View your offer"))
}

func TestRenderSMS__Short(t *testing.T) {
	msg := RenderSMS(RenderOptions{BusinessName: "Acme"}, newTestPromotionData(), "PROMO-AAAA1111")
	assert.Equal(t,
		"Acme: We Miss You - 15% off. Code PROMO-AAAA1111, valid until Apr 8. Reply STOP to opt out.",
		msg)
}

func TestRenderSMS__Long_Title_Is_Truncated(t *testing.T) {
	promo := newTestPromotionData()
	promo.Title = strings.Repeat("Very long promotion title ", 10)

	msg := RenderSMS(RenderOptions{BusinessName: "Acme"}, promo, "PROMO-AAAA1111")

	assert.Equal(t, MaxSMSLength, len([]rune(msg)))
	assert.True(t, strings.HasPrefix(msg, "Acme: Very long"))
	assert.True(t, strings.HasSuffix(msg, "... Code PROMO-AAAA1111, valid until Apr 8. Reply STOP to opt out."))
}
