package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// StatusError is returned when the provider responds with a non 2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider responded with status %d: %s", e.StatusCode, e.Body)
}

type httpClient struct {
	name       string
	client     *http.Client
	tracer     trace.Tracer
	maxRetries uint64

	newBackOff func() backoff.BackOff
}

func newHTTPClient(name string, timeout time.Duration, maxRetries uint64) *httpClient {
	return &httpClient{
		name: name,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 20,
			},
		},
		tracer:     otel.Tracer("transport"),
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
	}
}

const maxErrorBodySize = 512

// do sends the request built by newReq, retrying on network errors and 5xx / 429 responses
func (c *httpClient) do(
	ctx context.Context, spanName string,
	newReq func(ctx context.Context) (*http.Request, error),
	attrs ...attribute.KeyValue,
) error {
	ctx, span := c.tracer.Start(ctx, c.name+"::"+spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	attempts := 0
	operation := func() error {
		attempts++

		req, err := newReq(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

		resp, err := c.client.Do(req)
		if err != nil {
			return errors.Wrap(err, c.name)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	err := backoff.Retry(operation, b)

	span.SetAttributes(attribute.Int("transport.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
