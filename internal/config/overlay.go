// config/overlay.go
package config

import (
	"os"
	"strconv"
)

// OverlayEnv lets the environment override the file config. The UI shell
// launches the engine with these set, so env wins over the yaml.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("APPLYDESK_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("APPLYDESK_API_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutMS = ms
		}
	}
	if v := os.Getenv("APPLYDESK_AUTHORIZED_EMAIL"); v != "" {
		cfg.Auth.AuthorizedEmail = v
	}
	if v := os.Getenv("APPLYDESK_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
}
