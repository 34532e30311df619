package fetchkit

import "github.com/rs/zerolog"

// Options is a set of independent client behavior flags. Flags compose
// with Union or the bitwise OR operator; the zero value enables none,
// which is the safe default.
type Options uint32

const (
	// AllowSelfSignedCertificates makes the trust policy accept any
	// certificate chain the server presents, including self-signed
	// ones. Off by default.
	AllowSelfSignedCertificates Options = 1 << iota
)

// Has reports whether all flags in flag are set.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// Union returns the combination of o and other.
func (o Options) Union(other Options) Options {
	return o | other
}

// Option configures a Client during New. Capabilities set here are
// fixed for the client's lifetime.
type Option func(*Client)

// WithTransport overrides the transport used to send wire requests.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithEncoder overrides the encoder used for request bodies.
func WithEncoder(enc Encoder) Option {
	return func(c *Client) {
		if enc != nil {
			c.encoder = enc
		}
	}
}

// WithDecoder overrides the decoder used for response bodies.
func WithDecoder(dec Decoder) Option {
	return func(c *Client) {
		if dec != nil {
			c.decoder = dec
		}
	}
}

// WithLogger attaches a logger for request lifecycle events.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}
