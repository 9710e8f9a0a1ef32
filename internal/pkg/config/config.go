package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	consts "podcast-summarizer/pkg/constants"
)

type Config struct {
	Server     ServerConfig
	Upload     UploadConfig
	Storage    StorageConfig
	Summarizer SummarizerConfig
	Health     HealthConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Env         string
	Locale      string
	CORSOrigins string
}

type UploadConfig struct {
	MaxFileSize int64 // bytes
	KeyPrefix   string
}

type StorageConfig struct {
	Driver          string
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	UsePathStyle    bool
	URLMode         string
	SignedURLTTL    time.Duration
	LocalDir        string
	PublicBaseURL   string
}

type SummarizerConfig struct {
	BaseURL string
}

type HealthConfig struct {
	ProbeSchedule string // cron spec with seconds
}

type LogConfig struct {
	Level    string
	Encoding string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "3000"),
			Host:        getEnv("SERVER_HOST", "localhost"),
			Env:         getEnv("APP_ENV", "dev"),
			Locale:      getEnv("APP_LOCALE", "en"),
			CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", consts.MaxUploadFileSize),
			KeyPrefix:   strings.Trim(getEnv("UPLOAD_KEY_PREFIX", consts.DefaultKeyPrefix), "/"),
		},
		Storage: StorageConfig{
			Driver:          strings.ToLower(getEnv("STORAGE_DRIVER", consts.StorageDriverS3)),
			Bucket:          os.Getenv("AWS_S3_BUCKET_NAME"),
			Region:          os.Getenv("AWS_REGION"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        os.Getenv("AWS_S3_ENDPOINT"),
			UsePathStyle:    getEnvAsBool("AWS_S3_USE_PATH_STYLE", false),
			URLMode:         strings.ToLower(getEnv("STORAGE_URL_MODE", consts.URLModePublic)),
			SignedURLTTL:    getEnvAsDuration("STORAGE_SIGNED_URL_TTL", time.Hour),
			LocalDir:        getEnv("STORAGE_LOCAL_DIR", "uploads"),
			PublicBaseURL:   os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		},
		Summarizer: SummarizerConfig{
			BaseURL: getEnv("BACKEND_URL", "http://localhost:8000"),
		},
		Health: HealthConfig{
			ProbeSchedule: getEnv("HEALTH_PROBE_SCHEDULE", "0 * * * * *"),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
	}

	if config.Storage.Driver == consts.StorageDriverLocal {
		// Local disk has no bucket or region, name them so the intake check passes.
		if config.Storage.Bucket == "" {
			config.Storage.Bucket = "local"
		}
		if config.Storage.Region == "" {
			config.Storage.Region = "local"
		}
		if !filepath.IsAbs(config.Storage.LocalDir) {
			if root, err := findProjectRoot(); err == nil {
				config.Storage.LocalDir = filepath.Join(root, config.Storage.LocalDir)
			}
		}
		if config.Storage.PublicBaseURL == "" {
			config.Storage.PublicBaseURL = fmt.Sprintf("http://%s:%s/files", config.Server.Host, config.Server.Port)
		}
	}

	return config
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case consts.StorageDriverS3, consts.StorageDriverLocal:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", consts.StorageDriverS3, consts.StorageDriverLocal, c.Storage.Driver))
	}

	switch c.Storage.URLMode {
	case consts.URLModePublic:
	case consts.URLModeSigned:
		if c.Storage.Driver == consts.StorageDriverLocal {
			errs = append(errs, errors.New("STORAGE_URL_MODE=signed is not supported by the local driver"))
		}
		if c.Storage.SignedURLTTL <= 0 {
			errs = append(errs, errors.New("STORAGE_SIGNED_URL_TTL must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_URL_MODE must be %q or %q, got %q", consts.URLModePublic, consts.URLModeSigned, c.Storage.URLMode))
	}

	if c.Upload.MaxFileSize <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_FILE_SIZE must be positive"))
	}
	if c.Upload.KeyPrefix == "" {
		errs = append(errs, errors.New("UPLOAD_KEY_PREFIX must not be empty"))
	}

	if u, err := url.Parse(c.Summarizer.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_URL is not a valid URL: %q", c.Summarizer.BaseURL))
	}

	return errors.Join(errs...)
}

// MissingStorage lists unset storage keys. Uploads fail with configuration_missing
// until they are provided, the rest of the API keeps working.
func (c *Config) MissingStorage() []string {
	var missing []string
	if c.Storage.Bucket == "" {
		missing = append(missing, "AWS_S3_BUCKET_NAME")
	}
	if c.Storage.Region == "" {
		missing = append(missing, "AWS_REGION")
	}
	return missing
}

func findProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Root'a ulaştık, go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("15m") or plain seconds ("900").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
