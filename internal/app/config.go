package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	FirestoreProjectID  string `envconfig:"FIRESTORE_PROJECT_ID" required:"true"`
	FirestoreCollection string `envconfig:"FIRESTORE_COLLECTION" default:"products"`

	MediaEndpoint  string `envconfig:"MEDIA_ENDPOINT" default:"127.0.0.1:9000"`
	MediaAccessKey string `envconfig:"MEDIA_ACCESS_KEY" default:""`
	MediaSecretKey string `envconfig:"MEDIA_SECRET_KEY" default:""`
	MediaBucket    string `envconfig:"MEDIA_BUCKET" default:"catalogue"`
	MediaUseSSL    bool   `envconfig:"MEDIA_USE_SSL" default:"false"`
	MediaBaseURL   string `envconfig:"MEDIA_BASE_URL" default:""`

	RedisAddr        string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	SnapshotCacheTTL time.Duration `envconfig:"SNAPSHOT_CACHE_TTL" default:"5m"`

	AdminKeyHash string `envconfig:"ADMIN_KEY_HASH" required:"true"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.FirestoreProjectID == "" {
		return nil, errors.New("firestore project id must be provided")
	}
	if cfg.AdminKeyHash == "" {
		return nil, errors.New("admin key hash must be provided")
	}
	if cfg.MediaBaseURL == "" {
		scheme := "http"
		if cfg.MediaUseSSL {
			scheme = "https"
		}
		cfg.MediaBaseURL = scheme + "://" + cfg.MediaEndpoint + "/" + cfg.MediaBucket
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
