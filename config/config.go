package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures every runtime setting the service needs. It is loaded
// once at startup and passed down explicitly instead of being read from
// the environment at call sites.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBParams   string

	APIKey        string
	JWTSecret     string
	MinAppVersion string

	OtpTTL        time.Duration
	SessionTTL    time.Duration
	SweepInterval time.Duration

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	S3PublicBaseURL    string

	SMSGatewayURL string
	SMSAPIKey     string
	SMSSenderID   string

	InferenceURL    string
	InferenceAPIKey string
	InferenceModel  string
	DefaultPrompt   string
}

// Load reads the configuration from the environment. It fails if any
// required value is absent so a misconfigured process dies at startup
// rather than on the first request that needs the value.
func Load() (*Config, error) {
	var missing []string
	req := func(key string) string {
		val := os.Getenv(key)
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		DBUser:     req("DB_USER"),
		DBPassword: req("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     req("DB_NAME"),
		DBParams:   getEnv("DB_PARAMS", "charset=utf8mb4&parseTime=True&loc=Local"),

		APIKey:        req("API_KEY"),
		JWTSecret:     req("JWT_SECRET"),
		MinAppVersion: getEnv("MIN_APP_VERSION", "1.0.0"),

		OtpTTL:        envMinutes("OTP_TTL_MINUTES", 10),
		SessionTTL:    envHours("SESSION_TTL_HOURS", 720),
		SweepInterval: envMinutes("SWEEP_INTERVAL_MINUTES", 30),

		AWSRegion:          getEnv("AWS_REGION", "ap-south-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:           req("S3_BUCKET"),
		S3PublicBaseURL:    os.Getenv("S3_PUBLIC_BASE_URL"),

		SMSGatewayURL: req("SMS_GATEWAY_URL"),
		SMSAPIKey:     req("SMS_API_KEY"),
		SMSSenderID:   getEnv("SMS_SENDER_ID", "PROMOV"),

		InferenceURL:    req("INFERENCE_URL"),
		InferenceAPIKey: req("INFERENCE_API_KEY"),
		InferenceModel:  getEnv("INFERENCE_MODEL", "gpt-4o-mini"),
		DefaultPrompt:   os.Getenv("OCR_DEFAULT_PROMPT"),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// LoadDatabase reads only the database settings. Command line tools
// that talk to the database directly use this instead of Load so they
// do not demand the full service configuration.
func LoadDatabase() (*Config, error) {
	var missing []string
	req := func(key string) string {
		val := os.Getenv(key)
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}

	cfg := &Config{
		DBUser:     req("DB_USER"),
		DBPassword: req("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     req("DB_NAME"),
		DBParams:   getEnv("DB_PARAMS", "charset=utf8mb4&parseTime=True&loc=Local"),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envMinutes(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Minute
}

func envHours(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Hour
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
