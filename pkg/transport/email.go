package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/QuangTung97/promo-delivery/config"
	"github.com/pkg/errors"
)

// EmailClient sends emails through an HTTP email API (Resend compatible)
type EmailClient struct {
	http    *httpClient
	baseURL string
	apiKey  string
	from    string
}

// NewEmailClient ...
func NewEmailClient(conf config.EmailConfig) *EmailClient {
	return &EmailClient{
		http:    newHTTPClient("email", conf.Timeout, conf.MaxRetries),
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		apiKey:  conf.APIKey,
		from:    conf.FromAddress,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendCustomEmail ...
func (c *EmailClient) SendCustomEmail(ctx context.Context, to string, subject string, html string) error {
	if to == "" {
		return errors.New("email: empty recipient")
	}

	body, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	err = c.http.do(ctx, "SendCustomEmail", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		return req, nil
	})
	return errors.Wrap(err, "send email")
}
