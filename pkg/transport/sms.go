package transport

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/QuangTung97/promo-delivery/config"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

// SMSMessage is sent as To and Body, CustomerID and Metadata are only recorded on the span
type SMSMessage struct {
	To         string
	Message    string
	CustomerID string
	Metadata   map[string]string
}

// SMSClient sends SMS through a Twilio compatible HTTP API
type SMSClient struct {
	http       *httpClient
	limiter    *rate.Limiter
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

// NewSMSClient ...
func NewSMSClient(conf config.SMSConfig) *SMSClient {
	limit := rate.Inf
	if conf.RatePerSecond > 0 {
		limit = rate.Limit(conf.RatePerSecond)
	}
	burst := conf.Burst
	if burst <= 0 {
		burst = 1
	}

	return &SMSClient{
		http:       newHTTPClient("sms", conf.Timeout, conf.MaxRetries),
		limiter:    rate.NewLimiter(limit, burst),
		baseURL:    strings.TrimRight(conf.BaseURL, "/"),
		accountSID: conf.AccountSID,
		authToken:  conf.AuthToken,
		from:       conf.FromNumber,
	}
}

// SendSMS ...
func (c *SMSClient) SendSMS(ctx context.Context, msg SMSMessage) error {
	if msg.To == "" {
		return errors.New("sms: empty recipient")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "sms rate limit")
	}

	form := url.Values{}
	form.Set("To", msg.To)
	form.Set("From", c.from)
	form.Set("Body", msg.Message)
	encoded := form.Encode()

	endpoint := c.baseURL + "/2010-04-01/Accounts/" + url.PathEscape(c.accountSID) + "/Messages.json"

	err := c.http.do(ctx, "SendSMS", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.SetBasicAuth(c.accountSID, c.authToken)
		return req, nil
	}, smsAttributes(msg)...)
	return errors.Wrap(err, "send sms")
}

func smsAttributes(msg SMSMessage) []attribute.KeyValue {
	keys := make([]string, 0, len(msg.Metadata))
	for k := range msg.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys)+1)
	if msg.CustomerID != "" {
		attrs = append(attrs, attribute.String("sms.customer_id", msg.CustomerID))
	}
	for _, k := range keys {
		attrs = append(attrs, attribute.String("sms.metadata."+k, msg.Metadata[k]))
	}
	return attrs
}
