package fetchkit

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-Id"

// Client is a typed JSON HTTP client with pluggable transport, codec,
// and certificate-trust policy. All capabilities are injected at
// construction and fixed for the client's lifetime; a single client
// may carry many requests in flight concurrently.
type Client struct {
	transport Transport
	encoder   Encoder
	decoder   Decoder
	config    Config
	logger    zerolog.Logger
	trust     TrustDecision

	decodeCh  chan func()
	workersWG sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
}

// New creates a new client with the given configuration. Capabilities
// not overridden via options fall back to the defaults: a net/http
// transport and the JSON codec. The trust policy derived from
// cfg.Options is registered with the default transport's TLS layer.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:  cfg,
		encoder: JSONCodec{},
		decoder: JSONCodec{},
		logger:  zerolog.Nop(),
		trust:   trustPolicy(cfg.Options),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		t, err := NewHTTPTransport(cfg, c.trust)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}

	c.decodeCh = make(chan func())
	for i := 0; i < cfg.DecodeWorkers; i++ {
		c.workersWG.Add(1)
		go c.decodeWorker()
	}

	return c, nil
}

// TrustPolicy returns the trust decision the client registered with
// its transport. Exposed so custom Transport implementations can
// consult the same policy during their own handshakes.
func (c *Client) TrustPolicy() TrustDecision {
	return c.trust
}

// Close drains the decode pool and releases idle connections held by
// the default transport. Decodes already submitted finish first.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.decodeCh)
	c.workersWG.Wait()
	if t, ok := c.transport.(*HTTPTransport); ok {
		t.CloseIdleConnections()
	}
	return nil
}

// decodeWorker runs queued decode jobs until the pool is drained.
func (c *Client) decodeWorker() {
	defer c.workersWG.Done()
	for job := range c.decodeCh {
		job()
	}
}

// submitDecode hands a decode job to the pool. After Close the job
// runs inline so the owning future still resolves.
func (c *Client) submitDecode(job func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		job()
		return
	}
	c.decodeCh <- job
}

// Request performs a bodiless request and decodes the JSON response
// into T. The returned future resolves exactly once; every failure,
// including request construction, surfaces through it.
func Request[T any](c *Client, url string, headers map[string]string, method Method) *Future[T] {
	return dispatch[T](c, url, headers, method, nil)
}

// RequestBody performs a request carrying a JSON-encoded body of type
// U and decodes the response into T. The body is encoded eagerly; an
// encoding failure fails the future with a build error and the
// transport is never invoked.
func RequestBody[T, U any](c *Client, url string, headers map[string]string, body U, method Method) *Future[T] {
	return dispatch[T](c, url, headers, method, body)
}

// Get performs a GET request and decodes the JSON response into T.
func Get[T any](c *Client, url string, headers map[string]string) *Future[T] {
	return Request[T](c, url, headers, MethodGet)
}

// Delete performs a DELETE request and decodes the JSON response into T.
func Delete[T any](c *Client, url string, headers map[string]string) *Future[T] {
	return Request[T](c, url, headers, MethodDelete)
}

// Post performs a POST request with a JSON body and decodes the
// response into T.
func Post[T, U any](c *Client, url string, headers map[string]string, body U) *Future[T] {
	return RequestBody[T, U](c, url, headers, body, MethodPost)
}

// Put performs a PUT request with a JSON body and decodes the
// response into T.
func Put[T, U any](c *Client, url string, headers map[string]string, body U) *Future[T] {
	return RequestBody[T, U](c, url, headers, body, MethodPut)
}

// Patch performs a PATCH request with a JSON body and decodes the
// response into T.
func Patch[T, U any](c *Client, url string, headers map[string]string, body U) *Future[T] {
	return RequestBody[T, U](c, url, headers, body, MethodPatch)
}

// dispatch runs the request pipeline: build, send, decode on the
// background pool, resolve. Stages never reorder within one request;
// nothing is guaranteed across requests.
func dispatch[T any](c *Client, url string, headers map[string]string, method Method, body any) *Future[T] {
	wire, err := c.buildRequest(url, headers, method, body)
	if err != nil {
		return FailedFuture[T](err)
	}

	requestID := wire.Headers[requestIDHeader]
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", string(wire.Method)).
		Str("url", wire.URL).
		Msg("dispatching request")

	f := newFuture[T]()
	go func() {
		data, err := c.transport.Send(context.Background(), wire)
		if err != nil {
			c.logger.Debug().
				Str("request_id", requestID).
				Err(err).
				Msg("transport failed")
			f.reject(asTransportError(err))
			return
		}

		c.submitDecode(func() {
			var out T
			if err := c.decoder.Decode(data, &out); err != nil {
				c.logger.Debug().
					Str("request_id", requestID).
					Err(err).
					Msg("decode failed")
				f.reject(NewDecodeError(err))
				return
			}
			c.logger.Debug().
				Str("request_id", requestID).
				Int("bytes", len(data)).
				Msg("request resolved")
			f.resolve(out)
		})
	}()

	return f
}

// buildRequest resolves the target URL, merges default headers under
// the caller's, and hands the tuple to the wire builder.
func (c *Client) buildRequest(url string, headers map[string]string, method Method, body any) (WireRequest, error) {
	merged := make(map[string]string, len(c.config.Headers)+len(headers)+3)
	for k, v := range c.config.Headers {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	if _, ok := merged["Accept"]; !ok {
		merged["Accept"] = "application/json"
	}
	if body != nil {
		if _, ok := merged["Content-Type"]; !ok {
			merged["Content-Type"] = "application/json"
		}
	}
	if _, ok := merged["User-Agent"]; !ok {
		merged["User-Agent"] = UserAgent()
	}
	if _, ok := merged[requestIDHeader]; !ok {
		merged[requestIDHeader] = uuid.NewString()
	}

	return buildWireRequest(c.resolveURL(url), merged, method, body, c.encoder)
}

// resolveURL prepends the configured base URL to relative paths.
func (c *Client) resolveURL(path string) string {
	if c.config.BaseURL == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// asTransportError passes typed errors through verbatim and wraps
// anything else a custom transport returned.
func asTransportError(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return NewTransportError(err)
}
