// engine/internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeoutMS is applied when api.timeout_ms is unset or invalid.
const DefaultTimeoutMS = 30000

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	API struct {
		BaseURL           string  `yaml:"base_url" json:"base_url"`
		TimeoutMS         int     `yaml:"timeout_ms" json:"timeout_ms"`
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	} `yaml:"api" json:"api"`

	Auth struct {
		AuthorizedEmail string `yaml:"authorized_email" json:"authorized_email"`
	} `yaml:"auth" json:"auth"`

	UI struct {
		DefaultTheme    string `yaml:"default_theme" json:"default_theme"`
		DefaultLanguage string `yaml:"default_language" json:"default_language"`
	} `yaml:"ui" json:"ui"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Timeout returns the outbound API timeout as a duration.
func (c Config) Timeout() time.Duration {
	ms := c.API.TimeoutMS
	if ms <= 0 {
		ms = DefaultTimeoutMS
	}
	return time.Duration(ms) * time.Millisecond
}
