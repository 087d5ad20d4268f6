package promotion

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const claimCodePrefix = "PROMO-"

const claimCodeLength = 8

// promoCodeAlphabet leaves out characters that are easy to confuse when typed from a printed code
const promoCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateClaimCode returns a per-customer claim code "PROMO-" + 8 upper-cased nanoid characters.
// promotionID and customerID do not take part in the code, uniqueness relies on the size of the code space.
func GenerateClaimCode(promotionID int64, customerID string) string {
	_ = promotionID
	_ = customerID

	id, err := gonanoid.New(claimCodeLength)
	if err != nil {
		panic(err)
	}
	return claimCodePrefix + strings.ToUpper(id)
}

// GeneratePromoCode returns the promotion level code, prefix + "-" + 8 characters
func GeneratePromoCode(prefix string) string {
	id, err := gonanoid.Generate(promoCodeAlphabet, claimCodeLength)
	if err != nil {
		panic(err)
	}
	return strings.ToUpper(prefix) + "-" + id
}
