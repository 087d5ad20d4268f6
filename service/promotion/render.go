package promotion

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/QuangTung97/promo-delivery/model"
)

// MaxSMSLength is the length of a single SMS segment
const MaxSMSLength = 160

// RenderOptions ...
type RenderOptions struct {
	BusinessName  string
	PortalBaseURL string
}

// RenderedEmail ...
type RenderedEmail struct {
	Subject string
	HTML    string
}

var emailTemplate = template.Must(template.New("promotion_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>{{.Title}}</h2>
  <p>Hi {{.CustomerName}},</p>
  {{if .Description}}<p>{{.Description}}</p>{{end}}
  <p style="font-size: 18px;"><strong>{{.Discount}}</strong></p>
  <p>Your personal code:</p>
  <p style="font-size: 22px; letter-spacing: 2px;"><strong>{{.ClaimCode}}</strong></p>
  <p>Valid until {{.ValidUntil}}.</p>
  {{if .ClaimURL}}<p><a href="{{.ClaimURL}}">View your offer</a></p>{{end}}
  <p>{{.BusinessName}}</p>
  <p style="font-size: 11px; color: #888;">You received this email because you are a customer of {{.BusinessName}}. You can unsubscribe from promotional emails at any time.</p>
</body>
</html>
`))

type emailTemplateData struct {
	Title        string
	Description  string
	CustomerName string
	Discount     string
	ClaimCode    string
	ValidUntil   string
	ClaimURL     string
	BusinessName string
}

// DescribeDiscount returns a short human-readable description of the benefit
func DescribeDiscount(promo PromotionData) string {
	switch promo.DiscountType {
	case model.DiscountTypeValue:
		if promo.DiscountValue.Valid {
			return fmt.Sprintf("$%s off", promo.DiscountValue.Decimal.StringFixed(2))
		}
	case model.DiscountTypePercentage:
		if promo.DiscountPercent.Valid {
			return fmt.Sprintf("%s%% off", promo.DiscountPercent.Decimal.String())
		}
	case model.DiscountTypeFreeAddon:
		if promo.FreeAddon != "" {
			return "Free " + promo.FreeAddon
		}
	}
	return "Special offer"
}

func formatValidUntil(promo PromotionData) string {
	return promo.ValidUntil.Format("Jan 2, 2006")
}

func customerGreetingName(customer CustomerData) string {
	name := strings.TrimSpace(customer.Name)
	if name == "" {
		return "there"
	}
	return strings.Fields(name)[0]
}

func (o RenderOptions) claimURL(claimCode string) string {
	if o.PortalBaseURL == "" {
		return ""
	}
	return strings.TrimRight(o.PortalBaseURL, "/") + "/promotions?code=" + claimCode
}

// RenderEmail ...
func RenderEmail(opts RenderOptions, promo PromotionData, customer CustomerData, claimCode string) (RenderedEmail, error) {
	data := emailTemplateData{
		Title:        promo.Title,
		Description:  promo.Description,
		CustomerName: customerGreetingName(customer),
		Discount:     DescribeDiscount(promo),
		ClaimCode:    claimCode,
		ValidUntil:   formatValidUntil(promo),
		ClaimURL:     opts.claimURL(claimCode),
		BusinessName: opts.BusinessName,
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return RenderedEmail{}, err
	}

	return RenderedEmail{
		Subject: fmt.Sprintf("%s: %s", opts.BusinessName, promo.Title),
		HTML:    buf.String(),
	}, nil
}

// RenderSMS keeps the claim code and terms intact and shortens the headline to fit MaxSMSLength
func RenderSMS(opts RenderOptions, promo PromotionData, claimCode string) string {
	suffix := fmt.Sprintf(" Code %s, valid until %s. Reply STOP to opt out.",
		claimCode, promo.ValidUntil.Format("Jan 2"))
	headline := fmt.Sprintf("%s: %s - %s.", opts.BusinessName, promo.Title, DescribeDiscount(promo))

	budget := MaxSMSLength - len([]rune(suffix))
	if budget <= 0 {
		return truncateRunes(strings.TrimSpace(suffix), MaxSMSLength)
	}
	return truncateRunes(headline, budget) + suffix
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
