// Package fetchkit provides a generic, typed JSON HTTP client with
// pluggable transport, codec, and certificate-trust policy.
//
// A request is built eagerly (headers copied, body encoded through the
// injected Encoder), sent through the Transport, decoded on a
// background decode pool, and delivered through a single-resolution
// Future. Every failure — build, transport, or decode — surfaces
// through the future as a typed error; nothing is thrown synchronously
// and nothing is silently coerced into a default value.
//
// # Basic Usage
//
//	client, err := fetchkit.New(fetchkit.Config{
//	    BaseURL: "https://api.example.com",
//	})
//	defer client.Close()
//
//	f := fetchkit.Get[User](client, "/users/1", nil)
//	user, err := f.Wait(ctx)
//
// # Typed Request Bodies
//
//	f := fetchkit.Post[Ack, Payload](client, "/events", map[string]string{
//	    "X-Trace": "abc",
//	}, payload)
//
// # Self-Signed Certificates
//
//	client, err := fetchkit.New(fetchkit.Config{
//	    Options: fetchkit.AllowSelfSignedCertificates,
//	})
//
// The flag routes through a trust decision consulted by the transport
// on every TLS handshake; without it, certificate chains go through
// standard verification.
package fetchkit
