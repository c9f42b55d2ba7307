package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] with JSON tags and [Duration] fields so a
// config file can spell durations as strings.
type jsonConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		Revision       string   `json:"revision"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      int      `json:"rate_limit"`
		RateWindow     Duration `json:"rate_window"`
		RetryAttempts  int      `json:"retry_attempts"`
		RetryCooldown  Duration `json:"retry_cooldown"`
	} `json:"api,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Sync struct {
		Interval Duration `json:"interval"`
	} `json:"sync,omitempty"`
}

// parseJSON reads the config file at jsonFilePath and converts it into a
// [Config] suitable for merging.
func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jc jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		API: API{
			BaseURL:        jc.API.BaseURL,
			Revision:       jc.API.Revision,
			RequestTimeout: time.Duration(jc.API.RequestTimeout),
			RateLimit:      jc.API.RateLimit,
			RateWindow:     time.Duration(jc.API.RateWindow),
			RetryAttempts:  jc.API.RetryAttempts,
			RetryCooldown:  time.Duration(jc.API.RetryCooldown),
		},
		Storage: Storage{
			DSN: jc.Storage.DSN,
		},
		Sync: Sync{
			Interval: time.Duration(jc.Sync.Interval),
		},
	}

	return cfg, nil
}
