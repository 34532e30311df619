package fetchkit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Transport sends a built wire request and returns the raw response
// body. Implementations define how non-2xx statuses are interpreted
// and must consult the registered trust decision during TLS
// handshakes. A single transport instance may carry many requests
// concurrently.
type Transport interface {
	Send(ctx context.Context, req WireRequest) ([]byte, error)
}

// HTTPTransport is the default Transport, backed by net/http.
type HTTPTransport struct {
	client *http.Client
}

// compile-time assertion
var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds the default transport from the client
// configuration. The trust decision is registered with the TLS layer
// once, here, and consulted on every handshake for the transport's
// lifetime.
func NewHTTPTransport(cfg Config, policy TrustDecision) (*HTTPTransport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	tlsCfg, err := cfg.TLS.Build(policy)
	if err != nil {
		return nil, err
	}
	transport.TLSClientConfig = tlsCfg

	return &HTTPTransport{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// Send executes the wire request and returns the response body bytes.
// Non-2xx statuses surface as transport errors carrying the status
// code and original body.
func (t *HTTPTransport) Send(ctx context.Context, req WireRequest) ([]byte, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("create request: %w", err))
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewInvalidResponseError(fmt.Errorf("read response body: %w", err))
	}

	if classErr := classifyStatus(resp.StatusCode, data); classErr != nil {
		return nil, classErr
	}

	return data, nil
}

// CloseIdleConnections releases idle connections held by the transport.
func (t *HTTPTransport) CloseIdleConnections() {
	t.client.CloseIdleConnections()
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *HTTPTransport) Unwrap() *http.Client {
	return t.client
}

// classifyStatus converts a non-2xx status code into a typed error.
// Returns nil for 2xx status codes.
func classifyStatus(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return NewStatusError(statusCode, body)
}
