package config

import (
	"time"
)

// Config is the top-level configuration container for the sukistudy sync
// core. It is populated by merging values from environment variables and an
// optional JSON file (env values win).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// API holds settings of the remote learning service and of the
	// rate-limited client that talks to it.
	API API `envPrefix:"API_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds background synchronisation settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// API groups remote-service and rate-limiter settings.
type API struct {
	// BaseURL is the remote API root, including the version path segment.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Revision is the value of the API-version header sent on every request.
	// Env: API_REVISION
	Revision string `env:"REVISION"`

	// RequestTimeout is the per-request timeout of the HTTP client.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of requests allowed inside RateWindow.
	// Env: API_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// RateWindow is the sliding window the RateLimit budget applies to.
	// Env: API_RATE_WINDOW
	RateWindow time.Duration `env:"RATE_WINDOW"`

	// RetryAttempts caps how many times a throttled (HTTP 429) request is
	// retried before the client gives up.
	// Env: API_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryCooldown is the fixed wait between throttled-request retries.
	// Env: API_RETRY_COOLDOWN
	RetryCooldown time.Duration `env:"RETRY_COOLDOWN"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DSN is the sqlite database path of the local mirror. The special
	// value ":memory:" keeps the mirror in memory (used by tests).
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Sync holds background synchronisation settings.
type Sync struct {
	// Interval is how often the background sync job re-runs after the
	// initial startup sync.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// GetConfig builds the final configuration: environment variables first,
// then the optional JSON file merged underneath, then built-in defaults for
// anything still unset, then validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig returns the built-in fallback values. The remote service
// allows 60 requests per minute; the default budget stays below that so a
// second process on the same token has headroom.
func defaultConfig() *Config {
	return &Config{
		API: API{
			BaseURL:        "https://api.wanikani.com/v2",
			Revision:       "20170710",
			RequestTimeout: 30 * time.Second,
			RateLimit:      50,
			RateWindow:     time.Minute,
			RetryAttempts:  5,
			RetryCooldown:  5 * time.Second,
		},
		Storage: Storage{
			DSN: "sukistudy.db",
		},
		Sync: Sync{
			Interval: 15 * time.Minute,
		},
	}
}
