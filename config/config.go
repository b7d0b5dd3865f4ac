package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config holds the process configuration read from the environment
type Config struct {
	HTTPAddr string

	StorageDriver string
	StateFile     string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ChromePath       string
	ChromeNoSandbox  bool
	ExportTimeout    time.Duration
	ExportPixelRatio float64

	LetterheadFile       string
	DriveCredentialsFile string
	DriveFolderID        string
	PrinterName          string

	LogLevel string
}

// LoadEnvFile loads .env outside production. Values in the file override the
// process environment. A missing file is not an error.
func LoadEnvFile(path string) {
	if os.Getenv("APP_ENV") == "production" {
		return
	}
	if err := godotenv.Overload(path); err != nil {
		logg.Debugf("⚠️ LoadEnvFile: %s not loaded, using system environment variables: %v", path, err)
		return
	}
	logg.Infof("✅ LoadEnvFile: loaded environment variables from %s", path)
}

// Load reads Config from environment variables, applying defaults
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:             getEnv("HTTP_ADDR", "127.0.0.1:8080"),
		StorageDriver:        getEnv("STORAGE_DRIVER", StorageFile),
		StateFile:            os.Getenv("STATE_FILE"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		ChromePath:           os.Getenv("CHROME_PATH"),
		LetterheadFile:       os.Getenv("LETTERHEAD_FILE"),
		DriveCredentialsFile: os.Getenv("DRIVE_CREDENTIALS_FILE"),
		DriveFolderID:        os.Getenv("DRIVE_FOLDER_ID"),
		PrinterName:          os.Getenv("PRINTER_NAME"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.ChromeNoSandbox, err = getEnvBool("CHROME_NO_SANDBOX", false); err != nil {
		return nil, err
	}
	if cfg.ExportTimeout, err = getEnvDuration("EXPORT_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.ExportPixelRatio, err = getEnvFloat("EXPORT_PIXEL_RATIO", 1.5); err != nil {
		return nil, err
	}
	if cfg.ExportPixelRatio <= 0 {
		return nil, fmt.Errorf("EXPORT_PIXEL_RATIO must be greater than 0")
	}

	switch cfg.StorageDriver {
	case StorageFile:
		if cfg.StateFile == "" {
			cfg.StateFile, err = defaultStateFile()
			if err != nil {
				return nil, err
			}
		}
	case StoragePostgres, StorageRedis:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (use file, postgres or redis)", cfg.StorageDriver)
	}

	return cfg, nil
}

// DriveBackupEnabled reports whether exported PDFs are also uploaded to Drive
func (c *Config) DriveBackupEnabled() bool {
	return c.DriveCredentialsFile != "" && c.DriveFolderID != ""
}

func defaultStateFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "tesouraria-ibs", "state.json"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
