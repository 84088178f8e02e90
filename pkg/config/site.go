package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// SiteConfig configures the client side: the API client, the admin
// synchronizer and the navigation resolver used by sitectl.
type SiteConfig struct {
	APIURL         string        `mapstructure:"SITE_API_URL" validate:"required,url"`
	PublicKey      string        `mapstructure:"SITE_PUBLIC_KEY"`
	AccessToken    string        `mapstructure:"SITE_ACCESS_TOKEN"`
	BasePath       string        `mapstructure:"SITE_BASE_PATH" validate:"required,startswith=/"`
	RequestTimeout time.Duration `mapstructure:"SITE_REQUEST_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`
}

// LoadSite loads the client configuration. It shares the .env handling of Load
// but never requires database or storage settings.
func LoadSite() (*SiteConfig, error) {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SITE_API_URL", "http://localhost:8080/make-server-obd")
	v.SetDefault("SITE_BASE_PATH", "/")
	v.SetDefault("SITE_REQUEST_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	for _, key := range []string{
		"SITE_API_URL",
		"SITE_PUBLIC_KEY",
		"SITE_ACCESS_TOKEN",
		"SITE_BASE_PATH",
		"SITE_REQUEST_TIMEOUT",
		"LOG_LEVEL",
		"LOG_FORMAT",
	} {
		_ = v.BindEnv(key)
	}

	var c SiteConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	d, err := durationOf(v, "SITE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, err
	}
	c.RequestTimeout = d

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid site configuration: %w", err)
	}
	return &c, nil
}
