package fetchkit

import "crypto/x509"

// TrustVerdict is the outcome of a trust policy decision.
type TrustVerdict int

const (
	// VerdictDefault defers to the transport's standard certificate
	// validation.
	VerdictDefault TrustVerdict = iota
	// VerdictTrust accepts the presented chain as-is.
	VerdictTrust
)

// String returns the verdict name.
func (v TrustVerdict) String() string {
	switch v {
	case VerdictDefault:
		return "default"
	case VerdictTrust:
		return "trust"
	default:
		return "unknown"
	}
}

// TrustDecision decides whether to accept a server certificate chain
// during a TLS handshake. The transport calls it synchronously
// mid-handshake, possibly once per connection over the client's
// lifetime, so implementations must not block or perform I/O.
type TrustDecision func(chain []*x509.Certificate) TrustVerdict

// trustPolicy derives the trust decision from the client option flags.
// The returned decision is stateless: it depends only on the flags it
// closed over, never on the chain contents.
func trustPolicy(opts Options) TrustDecision {
	return func([]*x509.Certificate) TrustVerdict {
		if opts.Has(AllowSelfSignedCertificates) {
			return VerdictTrust
		}
		return VerdictDefault
	}
}
