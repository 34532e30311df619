package fetchkit

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEnvPrefix = "FETCHKIT"

// loaderConfig holds optional overrides for LoadConfig.
type loaderConfig struct {
	envFile   string
	envPrefix string
}

// LoaderOption configures LoadConfig.
type LoaderOption func(*loaderConfig)

// WithEnvFile loads the given .env file before reading environment
// variables.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// WithEnvPrefix overrides the environment variable prefix.
// Defaults to FETCHKIT.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *loaderConfig) { lc.envPrefix = prefix }
}

// LoadConfig reads a Client configuration from a YAML file, layering
// a .env file and prefixed process environment variables over it.
// FETCHKIT_TIMEOUT=5s overrides the timeout key, FETCHKIT_TLS_CA_FILE
// the tls.ca_file key, and so on.
func LoadConfig(configFile string, opts ...LoaderOption) (Config, error) {
	lc := loaderConfig{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.envFile != "" {
		if err := godotenv.Load(lc.envFile); err != nil {
			return Config{}, fmt.Errorf("fetchkit: load env file %s: %w", lc.envFile, err)
		}
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("fetchkit: read config %s: %w", configFile, err)
		}
	}

	bindEnvVars(v, lc.envPrefix)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("fetchkit: unmarshal config: %w", err)
	}
	return cfg, nil
}

// bindEnvVars sets prefixed environment variables on the viper
// instance under both flat and nested key forms, so PREFIX_TLS_CA_FILE
// reaches tls.ca_file as well as tls_ca_file.
func bindEnvVars(v *viper.Viper, prefix string) {
	prefix = strings.ToUpper(prefix) + "_"
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants generates the possible nested key spellings for a
// flat environment key. tls_ca_file -> [tls_ca_file, tls.ca.file,
// tls.ca_file, tls.ca.file ...]; single-word keys map to themselves.
func envKeyVariants(key string) []string {
	parts := strings.Split(key, "_")
	if len(parts) <= 1 {
		return []string{key}
	}

	variants := []string{
		key,
		strings.ReplaceAll(key, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	result := make([]string, 0, len(variants))
	for _, variant := range variants {
		if !seen[variant] {
			seen[variant] = true
			result = append(result, variant)
		}
	}
	return result
}
