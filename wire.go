package fetchkit

import (
	"fmt"
	"net/http"
)

// Method is an HTTP method token. Only the fixed set of constants
// below is accepted; there are no custom verbs.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
	MethodPatch  Method = http.MethodPatch
)

// Validate checks that m is one of the supported methods.
func (m Method) Validate() error {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return nil
	default:
		return fmt.Errorf("unsupported method %q", string(m))
	}
}

// WireRequest is a fully built request ready for a Transport. The
// body, when present, is already encoded; nothing is deferred to send
// time. Treat a built WireRequest as immutable.
type WireRequest struct {
	// URL is the fully resolved target address.
	URL string
	// Method is the HTTP method token.
	Method Method
	// Headers maps header name to value. Keys are unique; last write
	// wins on duplicates. Ordering carries no meaning.
	Headers map[string]string
	// Body is the encoded request body, nil when the request has none.
	Body []byte
}

// buildWireRequest maps the caller's request tuple onto the wire. The
// header map is copied, and a non-nil body is encoded eagerly via enc.
// An encoding failure propagates as a build error; it is never
// swallowed into an empty body.
func buildWireRequest(url string, headers map[string]string, method Method, body any, enc Encoder) (WireRequest, error) {
	if err := method.Validate(); err != nil {
		return WireRequest{}, NewBuildError(err)
	}

	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[k] = v
	}

	req := WireRequest{
		URL:     url,
		Method:  method,
		Headers: h,
	}

	if body != nil {
		data, err := enc.Encode(body)
		if err != nil {
			return WireRequest{}, NewBuildError(fmt.Errorf("encode body: %w", err))
		}
		req.Body = data
	}

	return req, nil
}
