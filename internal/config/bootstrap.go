package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultConfigYAML = `app:
  port: 38503
  data_dir: ""

api:
  base_url: ""
  timeout_ms: 30000
  requests_per_second: 4

auth:
  authorized_email: ""

ui:
  default_theme: dark
  default_language: en
`

// EnsureUserConfig writes a starter config into the data dir if none exists
// and returns its path.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.WriteFile(userPath, []byte(defaultConfigYAML), 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}
