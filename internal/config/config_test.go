package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Set required env var
	os.Setenv("DATABASE_URL", "postgres://localhost/patchboard")
	defer os.Unsetenv("DATABASE_URL")

	// Clear optional env vars to test defaults
	os.Unsetenv("PORT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("QUERY_TIMEOUT")
	os.Unsetenv("RENDER_CELL_SIZE")
	os.Unsetenv("LIST_LIMIT")

	cfg := Load()

	if cfg.DatabaseURL != "postgres://localhost/patchboard" {
		t.Errorf("DatabaseURL: got %q", cfg.DatabaseURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "8080")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Errorf("QueryTimeout: got %v, want %v", cfg.QueryTimeout, 5*time.Second)
	}
	if cfg.RenderCellSize != 40 {
		t.Errorf("RenderCellSize: got %v, want 40", cfg.RenderCellSize)
	}
	if cfg.ListLimit != 50 {
		t.Errorf("ListLimit: got %d, want 50", cfg.ListLimit)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://db:5432/quilts")
	os.Setenv("PORT", "9090")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("QUERY_TIMEOUT", "2s")
	os.Setenv("RENDER_CELL_SIZE", "64.5")
	os.Setenv("LIST_LIMIT", "20")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("PORT")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("QUERY_TIMEOUT")
		os.Unsetenv("RENDER_CELL_SIZE")
		os.Unsetenv("LIST_LIMIT")
	}()

	cfg := Load()

	if cfg.DatabaseURL != "postgres://db:5432/quilts" {
		t.Errorf("DatabaseURL: got %q", cfg.DatabaseURL)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port: got %q", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if cfg.QueryTimeout != 2*time.Second {
		t.Errorf("QueryTimeout: got %v", cfg.QueryTimeout)
	}
	if cfg.RenderCellSize != 64.5 {
		t.Errorf("RenderCellSize: got %v", cfg.RenderCellSize)
	}
	if cfg.ListLimit != 20 {
		t.Errorf("ListLimit: got %d", cfg.ListLimit)
	}
}

func TestLoad_MissingRequired_Panics(t *testing.T) {
	os.Unsetenv("DATABASE_URL")

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing DATABASE_URL")
		}
	}()

	Load()
}

func TestGetEnv_Fallback(t *testing.T) {
	os.Unsetenv("TEST_NONEXISTENT_KEY")
	got := getEnv("TEST_NONEXISTENT_KEY", "default_value")
	if got != "default_value" {
		t.Errorf("got %q, want %q", got, "default_value")
	}
}

func TestGetEnv_Override(t *testing.T) {
	os.Setenv("TEST_GET_ENV_KEY", "override")
	defer os.Unsetenv("TEST_GET_ENV_KEY")

	got := getEnv("TEST_GET_ENV_KEY", "default")
	if got != "override" {
		t.Errorf("got %q, want %q", got, "override")
	}
}

func TestGetEnvInt_Invalid_ReturnsFallback(t *testing.T) {
	os.Setenv("TEST_INT_INVALID", "not_a_number")
	defer os.Unsetenv("TEST_INT_INVALID")

	got := getEnvInt("TEST_INT_INVALID", 7)
	if got != 7 {
		t.Errorf("got %d, want fallback %d", got, 7)
	}
}

func TestGetEnvFloat_Valid(t *testing.T) {
	os.Setenv("TEST_FLOAT_KEY", "12.25")
	defer os.Unsetenv("TEST_FLOAT_KEY")

	got := getEnvFloat("TEST_FLOAT_KEY", 0)
	if got != 12.25 {
		t.Errorf("got %v, want %v", got, 12.25)
	}
}

func TestGetEnvFloat_Invalid_ReturnsFallback(t *testing.T) {
	os.Setenv("TEST_FLOAT_INVALID", "wide")
	defer os.Unsetenv("TEST_FLOAT_INVALID")

	got := getEnvFloat("TEST_FLOAT_INVALID", 1.5)
	if got != 1.5 {
		t.Errorf("got %v, want fallback %v", got, 1.5)
	}
}

func TestGetEnvDuration_Invalid_ReturnsFallback(t *testing.T) {
	os.Setenv("TEST_DUR_INVALID", "not_a_duration")
	defer os.Unsetenv("TEST_DUR_INVALID")

	got := getEnvDuration("TEST_DUR_INVALID", 10*time.Millisecond)
	if got != 10*time.Millisecond {
		t.Errorf("got %v, want fallback %v", got, 10*time.Millisecond)
	}
}

func TestGetEnvRequired_Empty_Panics(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_MISSING")

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing required env var")
		}
	}()

	getEnvRequired("TEST_REQUIRED_MISSING")
}
