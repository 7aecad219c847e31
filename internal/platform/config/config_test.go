package config

import "testing"

func validConfig() Config {
	return Config{
		Addr:                ":8080",
		DatabaseURL:         "postgres://localhost/koala",
		JWTSecret:           "secret",
		AdminPassword:       "sesame",
		Environment:         "development",
		BreakDeductionHours: 1.0,
		BreakThresholdHours: 5.0,
		DefaultOTRate:       1.25,
		DefaultHolidayRate:  2.0,
		TrackerHourlyRate:   300.0,
		MaxBodyBytes:        1048576,
		RateLimitPerMinute:  120,
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }},
		{"missing admin password", func(c *Config) { c.AdminPassword = "" }},
		{"production without jwt secret", func(c *Config) { c.Environment = "production"; c.JWTSecret = "" }},
		{"negative break deduction", func(c *Config) { c.BreakDeductionHours = -0.5 }},
		{"zero break threshold", func(c *Config) { c.BreakThresholdHours = 0 }},
		{"ot rate below 1", func(c *Config) { c.DefaultOTRate = 0.5 }},
		{"holiday rate below 1", func(c *Config) { c.DefaultHolidayRate = 0.9 }},
		{"tiny body limit", func(c *Config) { c.MaxBodyBytes = 100 }},
		{"zero rate limit", func(c *Config) { c.RateLimitPerMinute = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.BreakDeductionHours != 1.0 {
		t.Fatalf("expected default break deduction 1.0, got %v", cfg.BreakDeductionHours)
	}
	if cfg.BreakThresholdHours != 5.0 {
		t.Fatalf("expected default break threshold 5.0, got %v", cfg.BreakThresholdHours)
	}
	if cfg.DefaultOTRate != 1.25 || cfg.DefaultHolidayRate != 2.0 {
		t.Fatalf("unexpected default multipliers: %v / %v", cfg.DefaultOTRate, cfg.DefaultHolidayRate)
	}
	if cfg.TrackerHourlyRate != 300.0 {
		t.Fatalf("expected default tracker rate 300.0, got %v", cfg.TrackerHourlyRate)
	}
}
