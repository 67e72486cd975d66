package config

import (
	"strings"
	"testing"
	"time"
)

var requiredKeys = []string{
	"DB_USER", "DB_PASSWORD", "DB_NAME",
	"API_KEY", "JWT_SECRET", "S3_BUCKET",
	"SMS_GATEWAY_URL", "SMS_API_KEY",
	"INFERENCE_URL", "INFERENCE_API_KEY",
}

var optionalKeys = []string{
	"PORT", "DB_HOST", "DB_PORT", "DB_PARAMS",
	"MIN_APP_VERSION", "OTP_TTL_MINUTES", "SESSION_TTL_HOURS", "SWEEP_INTERVAL_MINUTES",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	"S3_PUBLIC_BASE_URL", "SMS_SENDER_ID",
	"INFERENCE_MODEL", "OCR_DEFAULT_PROMPT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range requiredKeys {
		t.Setenv(key, "")
	}
	for _, key := range optionalKeys {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	for _, key := range requiredKeys {
		t.Setenv(key, "test-"+strings.ToLower(key))
	}
}

func TestLoadReportsMissingVariables(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("Expected an error when required variables are missing")
	}
	for _, key := range requiredKeys {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Expected %s to be reported missing, got %v", key, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBHost != "127.0.0.1" || cfg.DBPort != "3306" {
		t.Errorf("Expected default database host and port, got %q:%q", cfg.DBHost, cfg.DBPort)
	}
	if cfg.MinAppVersion != "1.0.0" {
		t.Errorf("Expected default app version 1.0.0, got %q", cfg.MinAppVersion)
	}
	if cfg.OtpTTL != 10*time.Minute {
		t.Errorf("Expected default OTP TTL of 10 minutes, got %s", cfg.OtpTTL)
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Errorf("Expected default session TTL of 720 hours, got %s", cfg.SessionTTL)
	}
	if cfg.SweepInterval != 30*time.Minute {
		t.Errorf("Expected default sweep interval of 30 minutes, got %s", cfg.SweepInterval)
	}
	if cfg.InferenceModel != "gpt-4o-mini" {
		t.Errorf("Expected default inference model, got %q", cfg.InferenceModel)
	}
	if cfg.SMSSenderID != "PROMOV" {
		t.Errorf("Expected default sender id, got %q", cfg.SMSSenderID)
	}
	if cfg.AWSRegion != "ap-south-1" {
		t.Errorf("Expected default AWS region, got %q", cfg.AWSRegion)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("OTP_TTL_MINUTES", "5")
	t.Setenv("INFERENCE_MODEL", "gpt-4o")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Port)
	}
	if cfg.OtpTTL != 5*time.Minute {
		t.Errorf("Expected OTP TTL of 5 minutes, got %s", cfg.OtpTTL)
	}
	if cfg.InferenceModel != "gpt-4o" {
		t.Errorf("Expected inference model gpt-4o, got %q", cfg.InferenceModel)
	}
}

func TestLoadDatabaseNeedsOnlyDatabaseVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_USER", "promovia")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "promovia")

	cfg, err := LoadDatabase()
	if err != nil {
		t.Fatalf("Expected database-only load to succeed, got %v", err)
	}
	if cfg.DBUser != "promovia" || cfg.DBName != "promovia" {
		t.Errorf("Expected database settings to be read, got %+v", cfg)
	}
	if cfg.DBHost != "127.0.0.1" {
		t.Errorf("Expected default database host, got %q", cfg.DBHost)
	}

	t.Setenv("DB_NAME", "")
	if _, err := LoadDatabase(); err == nil {
		t.Fatal("Expected an error when DB_NAME is missing")
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 15},
		{"valid", "42", 42},
		{"not a number", "soon", 15},
		{"negative", "-3", 15},
		{"zero", "0", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_INT", tt.value)
			if got := envInt("TEST_ENV_INT", 15); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
