package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr  = ":8080"
	defaultDatabaseDSN = "inspectbook.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultOTPTTL      = "5m"
	defaultOTPResend   = "60s"
	defaultOTPAttempts = 5
	defaultOTPDemoCode = "1234"
)

type RuntimeConfig struct {
	AppEnv      string
	ListenAddr  string
	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration

	OTPCodeTTL        time.Duration
	OTPResendCooldown time.Duration
	OTPMaxAttempts    int
	// OTPDemoCode fixes the one-time code instead of generating one; set it
	// to "" to force random codes. The code is only ever delivered to the
	// process log, there is no real delivery channel.
	OTPDemoCode string
	DevLogOTP   bool
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr))
	cfg.DatabaseDSN = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseDSN))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.OTPCodeTTL, err = parseDurationEnv("OTP_TTL", defaultOTPTTL)
	if err != nil {
		return nil, err
	}

	cfg.OTPResendCooldown, err = parseDurationEnv("OTP_RESEND_COOLDOWN", defaultOTPResend)
	if err != nil {
		return nil, err
	}

	cfg.OTPMaxAttempts = defaultOTPAttempts
	if v := strings.TrimSpace(os.Getenv("OTP_MAX_ATTEMPTS")); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &cfg.OTPMaxAttempts); err != nil {
			return nil, fmt.Errorf("invalid OTP_MAX_ATTEMPTS value %q: %w", v, err)
		}
	}

	if v, ok := os.LookupEnv("OTP_DEMO_CODE"); ok {
		cfg.OTPDemoCode = strings.TrimSpace(v)
	} else {
		cfg.OTPDemoCode = defaultOTPDemoCode
	}
	cfg.DevLogOTP = parseBoolEnv("DEV_LOG_OTP", cfg.AppEnv == "dev")

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.OTPCodeTTL <= 0 {
		return fmt.Errorf("OTP_TTL must be > 0")
	}
	if cfg.OTPResendCooldown < 0 {
		return fmt.Errorf("OTP_RESEND_COOLDOWN must be >= 0")
	}
	if cfg.OTPMaxAttempts < 1 {
		return fmt.Errorf("OTP_MAX_ATTEMPTS must be >= 1")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.OTPDemoCode != "" {
			return fmt.Errorf("in prod/release OTP_DEMO_CODE must be empty")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if v == "" {
		return fallback
	}
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
