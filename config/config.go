// Package config reads the studio's settings from the environment.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"variant-studio/catalog"
	"variant-studio/models"
	"variant-studio/shipping"
)

// Database drivers understood by db.InitDB.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds every runtime setting.
type Config struct {
	Port string

	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	OutputDir string
	WorkDir   string

	VariantCount     int
	BatchWorkers     int
	BatchTimeout     time.Duration
	FailurePolicy    models.FailurePolicy
	ShippingStrategy string
	CategoriesFile   string

	ChromePath      string
	CredentialsPath string
	DriveFolderID   string
}

// Load builds a Config from environment variables, applying defaults and
// rejecting invalid values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             strings.TrimPrefix(getEnv("PORT", "8080"), ":"),
		SQLitePath:       getEnv("SQLITE_PATH", "data/products.db"),
		OutputDir:        getEnv("OUTPUT_DIR", "generated"),
		WorkDir:          getEnv("WORK_DIR", "tmp"),
		ShippingStrategy: getEnv("SHIPPING_STRATEGY", shipping.StrategyZoneSlab),
		CategoriesFile:   os.Getenv("CATEGORIES_FILE"),
		ChromePath:       os.Getenv("CHROME_PATH"),
		CredentialsPath:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DriveFolderID:    os.Getenv("DRIVE_FOLDER_ID"),
	}

	var err error
	if cfg.DatabaseURL, err = databaseURL(); err != nil {
		return nil, err
	}
	if cfg.DBDriver, err = dbDriver(cfg.DatabaseURL); err != nil {
		return nil, err
	}

	if cfg.VariantCount, err = getInt("VARIANT_COUNT", 50); err != nil {
		return nil, err
	}
	if cfg.VariantCount < 1 || cfg.VariantCount > catalog.MaxTemplates {
		return nil, fmt.Errorf("VARIANT_COUNT must be between 1 and %d, got %d", catalog.MaxTemplates, cfg.VariantCount)
	}

	if cfg.BatchWorkers, err = getInt("BATCH_WORKERS", runtime.NumCPU()); err != nil {
		return nil, err
	}
	if cfg.BatchWorkers < 1 {
		return nil, fmt.Errorf("BATCH_WORKERS must be positive, got %d", cfg.BatchWorkers)
	}

	if cfg.BatchTimeout, err = getDuration("BATCH_TIMEOUT", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.BatchTimeout <= 0 {
		return nil, fmt.Errorf("BATCH_TIMEOUT must be positive, got %s", cfg.BatchTimeout)
	}

	if cfg.FailurePolicy, err = models.ParseFailurePolicy(os.Getenv("FAILURE_POLICY")); err != nil {
		return nil, fmt.Errorf("invalid FAILURE_POLICY: %w", err)
	}

	switch cfg.ShippingStrategy {
	case shipping.StrategyZoneSlab, shipping.StrategyCategoryRange:
	default:
		return nil, fmt.Errorf("invalid SHIPPING_STRATEGY %q (expected %s or %s)",
			cfg.ShippingStrategy, shipping.StrategyZoneSlab, shipping.StrategyCategoryRange)
	}

	return cfg, nil
}

// DriveEnabled reports whether archives should be published to Drive.
func (c *Config) DriveEnabled() bool {
	return c.CredentialsPath != "" && c.DriveFolderID != ""
}

// databaseURL returns DATABASE_URL, or a connection string built from the
// DB_* variables, or "" when neither is set.
func databaseURL() (string, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return "", nil
	}
	user := os.Getenv("DB_USER")
	dbname := os.Getenv("DB_NAME")
	if user == "" || dbname == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		getEnv("DB_PORT", "5432"),
		user,
		os.Getenv("DB_PASSWORD"),
		dbname,
		getEnv("DB_SSLMODE", "disable"),
	), nil
}

// dbDriver picks postgres when a connection string exists, sqlite otherwise,
// unless DB_DRIVER says so explicitly.
func dbDriver(url string) (string, error) {
	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	switch driver {
	case "":
		if url != "" {
			return DriverPostgres, nil
		}
		return DriverSQLite, nil
	case DriverPostgres:
		if url == "" {
			return "", fmt.Errorf("DB_DRIVER=postgres requires DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
		return driver, nil
	case DriverSQLite:
		return driver, nil
	}
	return "", fmt.Errorf("invalid DB_DRIVER %q (expected %s or %s)", driver, DriverPostgres, DriverSQLite)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
