package config

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup.
func (cfg *Config) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}
	if cfg.API.RateLimit <= 0 || cfg.API.RateWindow <= 0 {
		return ErrInvalidAPIConfigs
	}
	if cfg.API.RetryAttempts <= 0 || cfg.API.RetryCooldown < 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.Interval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
