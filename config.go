package fetchkit

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultDecodeWorkers = 4
)

// Config configures a Client.
type Config struct {
	// BaseURL is prepended to request URLs that are not absolute.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout bounds each transport attempt in the default transport.
	// Defaults to 30s. This is transport-level behavior, not a
	// caller-facing cancellation mechanism.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied under request headers.
	// Request headers win on conflict.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures TLS settings for the default transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Options are the client behavior flags.
	Options Options `yaml:"-" mapstructure:"-"`

	// AllowSelfSigned mirrors the AllowSelfSignedCertificates flag for
	// file-based configuration. Folded into Options by ApplyDefaults.
	AllowSelfSigned bool `yaml:"allow_self_signed" mapstructure:"allow_self_signed"`

	// DecodeWorkers is the size of the background decode pool.
	// Defaults to 4.
	DecodeWorkers int `yaml:"decode_workers" mapstructure:"decode_workers" validate:"omitempty,min=1"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.DecodeWorkers <= 0 {
		c.DecodeWorkers = defaultDecodeWorkers
	}
	if c.AllowSelfSigned {
		c.Options = c.Options.Union(AllowSelfSignedCertificates)
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("fetchkit: timeout must be positive")
	}
	if err := structValidator().Struct(c); err != nil {
		return fmt.Errorf("fetchkit: invalid config: %w", err)
	}
	return c.TLS.Validate()
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// structValidator returns the shared validator instance.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
