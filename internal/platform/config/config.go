package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr                string
	DatabaseURL         string
	JWTSecret           string
	AdminPassword       string
	Environment         string
	BreakDeductionHours float64
	BreakThresholdHours float64
	DefaultOTRate       float64
	DefaultHolidayRate  float64
	TrackerHourlyRate   float64
	MaxBodyBytes        int64
	RateLimitPerMinute  int
	RunMigrations       bool
	RunSeed             bool
	MetricsEnabled      bool
}

func Load() Config {
	return Config{
		Addr:                getEnv("APP_ADDR", ":8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		AdminPassword:       getEnv("ADMIN_PASSWORD", ""),
		Environment:         getEnv("APP_ENV", "development"),
		BreakDeductionHours: getEnvFloat("BREAK_DEDUCTION_HOURS", 1.0),
		BreakThresholdHours: getEnvFloat("BREAK_THRESHOLD_HOURS", 5.0),
		DefaultOTRate:       getEnvFloat("DEFAULT_OT_RATE", 1.25),
		DefaultHolidayRate:  getEnvFloat("DEFAULT_HOLIDAY_RATE", 2.0),
		TrackerHourlyRate:   getEnvFloat("TRACKER_HOURLY_RATE", 300.0),
		MaxBodyBytes:        int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RunMigrations:       getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:             getEnvBool("RUN_SEED", true),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.AdminPassword) == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.BreakDeductionHours < 0 {
		return fmt.Errorf("BREAK_DEDUCTION_HOURS must not be negative")
	}
	if c.BreakThresholdHours <= 0 {
		return fmt.Errorf("BREAK_THRESHOLD_HOURS must be positive")
	}
	if c.DefaultOTRate < 1 {
		return fmt.Errorf("DEFAULT_OT_RATE must be at least 1.0")
	}
	if c.DefaultHolidayRate < 1 {
		return fmt.Errorf("DEFAULT_HOLIDAY_RATE must be at least 1.0")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
