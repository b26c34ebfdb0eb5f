package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/DukeRupert/frontdoor/internal/site"
	"github.com/DukeRupert/frontdoor/internal/storage"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Public URL of the deployed site
	BaseURL string

	// Deployment target: "static" (pre-rendered export) or "server"
	ExportMode site.ExportMode

	// Path prefix for sub-path hosting (e.g. "/landing"). Empty for root hosting.
	BasePath string

	// Site content file (YAML). Empty uses the embedded default content.
	SiteConfigPath string

	// Emit the hidden form the hosting provider scans for at deploy time
	FormDetectionShim bool

	// Static export output
	ExportDir       string
	PublishProvider string // "local" or "r2"
	ExportPrune     bool   // delete files the previous export wrote that this one does not

	// R2 publishing (static export)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string

	// Contact form client (terminal form)
	ContactOrigin  string
	ContactTimeout time.Duration // zero means no client-side timeout

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),

		ExportMode:     site.ExportMode(getEnv("EXPORT_MODE", string(site.ExportServer))),
		BasePath:       getEnv("BASE_PATH", ""),
		SiteConfigPath: getEnv("SITE_CONFIG", ""),

		FormDetectionShim: getEnvBool("FORM_DETECTION_SHIM", true),

		ExportDir:       getEnv("EXPORT_DIR", "./out"),
		PublishProvider: getEnv("PUBLISH_PROVIDER", storage.ProviderLocal),
		ExportPrune:     getEnvBool("EXPORT_PRUNE", false),

		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),

		ContactTimeout: getEnvDuration("CONTACT_TIMEOUT", 0),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	// The terminal contact form posts to the deployed site unless told otherwise
	cfg.ContactOrigin = getEnv("CONTACT_ORIGIN", cfg.BaseURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field rules and normalizes BasePath.
func (c *Config) Validate() error {
	if !c.ExportMode.Valid() {
		return fmt.Errorf("EXPORT_MODE must be either 'static' or 'server', got: %s", c.ExportMode)
	}

	basePath, err := site.NormalizeBasePath(c.BasePath)
	if err != nil {
		return fmt.Errorf("BASE_PATH: %w", err)
	}
	c.BasePath = basePath

	if c.PublishProvider == storage.ProviderR2 {
		if c.R2AccountID == "" {
			return fmt.Errorf("R2_ACCOUNT_ID is required when PUBLISH_PROVIDER is 'r2'")
		}
		if c.R2AccessKeyID == "" {
			return fmt.Errorf("R2_ACCESS_KEY_ID is required when PUBLISH_PROVIDER is 'r2'")
		}
		if c.R2SecretAccessKey == "" {
			return fmt.Errorf("R2_SECRET_ACCESS_KEY is required when PUBLISH_PROVIDER is 'r2'")
		}
		if c.R2BucketName == "" {
			return fmt.Errorf("R2_BUCKET_NAME is required when PUBLISH_PROVIDER is 'r2'")
		}
	} else if c.PublishProvider != storage.ProviderLocal {
		return fmt.Errorf("PUBLISH_PROVIDER must be either 'local' or 'r2', got: %s", c.PublishProvider)
	}

	if c.ContactTimeout < 0 {
		return fmt.Errorf("CONTACT_TIMEOUT must not be negative, got: %s", c.ContactTimeout)
	}

	if c.ContactOrigin != "" && !strings.HasPrefix(c.ContactOrigin, "http://") && !strings.HasPrefix(c.ContactOrigin, "https://") {
		return fmt.Errorf("CONTACT_ORIGIN must be an http(s) URL, got: %s", c.ContactOrigin)
	}

	return nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LocalStorageConfig returns the publish target for local exports.
func (c *Config) LocalStorageConfig() storage.LocalConfig {
	return storage.LocalConfig{
		BasePath: c.ExportDir,
		BaseURL:  strings.TrimSuffix(c.BaseURL, "/") + c.BasePath,
	}
}

// R2StorageConfig returns the publish target for R2 exports.
func (c *Config) R2StorageConfig() storage.R2Config {
	return storage.R2Config{
		AccountID:       c.R2AccountID,
		AccessKeyID:     c.R2AccessKeyID,
		SecretAccessKey: c.R2SecretAccessKey,
		BucketName:      c.R2BucketName,
		PublicURL:       c.R2PublicURL,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
