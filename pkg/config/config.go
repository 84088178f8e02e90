package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the backend configuration loaded from environment variables or config files.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	DatabaseURL  string `mapstructure:"DATABASE_URL" validate:"required,url|uri"`
	SeedDefaults bool   `mapstructure:"SEED_DEFAULTS"`

	// RedisAddr is optional for the API; without it deleted projects keep their images.
	RedisAddr        string `mapstructure:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	AsynqConcurrency int    `mapstructure:"ASYNQ_CONCURRENCY" validate:"gte=1,lte=1000"`

	JWTSecret     string `mapstructure:"JWT_SECRET"`
	APIPrefix     string `mapstructure:"API_PREFIX" validate:"required,startswith=/"`
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL" validate:"required,url"`

	StorageDriver  string        `mapstructure:"STORAGE_DRIVER" validate:"required,oneof=local s3"`
	StorageDir     string        `mapstructure:"STORAGE_DIR" validate:"required_if=StorageDriver local"`
	S3Bucket       string        `mapstructure:"S3_BUCKET" validate:"required_if=StorageDriver s3"`
	S3Region       string        `mapstructure:"S3_REGION"`
	S3Endpoint     string        `mapstructure:"S3_ENDPOINT" validate:"omitempty,url"`
	SignedURLTTL   time.Duration `mapstructure:"SIGNED_URL_TTL" validate:"required"`
	UploadMaxBytes int64         `mapstructure:"UPLOAD_MAX_BYTES" validate:"gte=1"`

	GoMaxProcs int `mapstructure:"GOMAXPROCS" validate:"gte=0,lte=4096"`
}

// maxS3SignedURLTTL is the longest presign lifetime S3 accepts.
const maxS3SignedURLTTL = 7 * 24 * time.Hour

var (
	cfg      *Config
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", "0.0.0.0:8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SEED_DEFAULTS", true)
	v.SetDefault("ASYNQ_CONCURRENCY", 4)
	v.SetDefault("API_PREFIX", "/make-server-obd")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("STORAGE_DIR", "./data/uploads")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("SIGNED_URL_TTL", "1h")
	v.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	v.SetDefault("GOMAXPROCS", 0)

	// Optional config file
	_ = v.ReadInConfig()

	keys := []string{
		"APP_ENV",
		"HTTP_ADDR",
		"SHUTDOWN_TIMEOUT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"DATABASE_URL",
		"SEED_DEFAULTS",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"ASYNQ_CONCURRENCY",
		"JWT_SECRET",
		"API_PREFIX",
		"PUBLIC_BASE_URL",
		"STORAGE_DRIVER",
		"STORAGE_DIR",
		"S3_BUCKET",
		"S3_REGION",
		"S3_ENDPOINT",
		"SIGNED_URL_TTL",
		"UPLOAD_MAX_BYTES",
		"GOMAXPROCS",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	// Duration types may arrive as strings from the environment
	var err error
	if c.ShutdownTimeout, err = durationOf(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return nil, err
	}
	if c.SignedURLTTL, err = durationOf(v, "SIGNED_URL_TTL"); err != nil {
		return nil, err
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if c.StorageDriver == "s3" && c.SignedURLTTL > maxS3SignedURLTTL {
		return nil, fmt.Errorf("invalid configuration: SIGNED_URL_TTL %s exceeds the S3 presign limit of %s", c.SignedURLTTL, maxS3SignedURLTTL)
	}

	if c.GoMaxProcs > 0 {
		runtime.GOMAXPROCS(c.GoMaxProcs)
	}

	cfg = &c
	return cfg, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}

// Get returns the loaded configuration. Panics if not loaded.
func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call config.Load or config.MustLoad first")
	}
	return cfg
}

// IsDevelopment reports whether verbose diagnostics should be enabled.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "test"
}

func loadDotEnv() {
	// Missing files are fine
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()
}

func durationOf(v *viper.Viper, key string) (time.Duration, error) {
	s := v.GetString(key)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
