package config

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"variant-studio/models"
)

var configKeys = []string{
	"PORT", "DB_DRIVER", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
	"DB_NAME", "DB_SSLMODE", "SQLITE_PATH", "OUTPUT_DIR", "WORK_DIR", "VARIANT_COUNT",
	"BATCH_WORKERS", "BATCH_TIMEOUT", "FAILURE_POLICY", "SHIPPING_STRATEGY",
	"CATEGORIES_FILE", "CHROME_PATH", "GOOGLE_APPLICATION_CREDENTIALS", "DRIVE_FOLDER_ID",
}

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port: got %s", cfg.Port)
	}
	if cfg.DBDriver != DriverSQLite || cfg.SQLitePath != "data/products.db" {
		t.Errorf("db: got %s %s", cfg.DBDriver, cfg.SQLitePath)
	}
	if cfg.VariantCount != 50 {
		t.Errorf("VariantCount: got %d", cfg.VariantCount)
	}
	if cfg.BatchWorkers != runtime.NumCPU() {
		t.Errorf("BatchWorkers: got %d", cfg.BatchWorkers)
	}
	if cfg.BatchTimeout != 5*time.Minute {
		t.Errorf("BatchTimeout: got %s", cfg.BatchTimeout)
	}
	if cfg.FailurePolicy != models.FailureAbort {
		t.Errorf("FailurePolicy: got %s", cfg.FailurePolicy)
	}
	if cfg.ShippingStrategy != "zone" {
		t.Errorf("ShippingStrategy: got %s", cfg.ShippingStrategy)
	}
	if cfg.DriveEnabled() {
		t.Error("Drive should be disabled without credentials")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9000")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "studio")
	t.Setenv("DB_NAME", "variants")
	t.Setenv("VARIANT_COUNT", "100")
	t.Setenv("BATCH_WORKERS", "3")
	t.Setenv("BATCH_TIMEOUT", "30s")
	t.Setenv("FAILURE_POLICY", "skip")
	t.Setenv("SHIPPING_STRATEGY", "category-range")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")
	t.Setenv("DRIVE_FOLDER_ID", "folder")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port: got %s", cfg.Port)
	}
	if cfg.DBDriver != DriverPostgres {
		t.Errorf("DBDriver: got %s", cfg.DBDriver)
	}
	if !strings.Contains(cfg.DatabaseURL, "host=localhost port=5432 user=studio") ||
		!strings.Contains(cfg.DatabaseURL, "sslmode=disable") {
		t.Errorf("DatabaseURL: got %s", cfg.DatabaseURL)
	}
	if cfg.VariantCount != 100 || cfg.BatchWorkers != 3 || cfg.BatchTimeout != 30*time.Second {
		t.Errorf("batch settings: got %d %d %s", cfg.VariantCount, cfg.BatchWorkers, cfg.BatchTimeout)
	}
	if cfg.FailurePolicy != models.FailureSkip || cfg.ShippingStrategy != "category-range" {
		t.Errorf("policy/strategy: got %s %s", cfg.FailurePolicy, cfg.ShippingStrategy)
	}
	if !cfg.DriveEnabled() {
		t.Error("Drive should be enabled")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"VARIANT_COUNT":     "0",
		"BATCH_WORKERS":     "many",
		"BATCH_TIMEOUT":     "-1s",
		"FAILURE_POLICY":    "retry",
		"SHIPPING_STRATEGY": "flat",
		"DB_DRIVER":         "mysql",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%s: expected error", key, value)
			}
		})
	}

	t.Run("postgres without url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "postgres")
		if _, err := Load(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("partial db vars", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_HOST", "localhost")
		if _, err := Load(); err == nil {
			t.Fatal("expected error")
		}
	})
}
