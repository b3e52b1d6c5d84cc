package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// APIURL is the base URL of the panel REST API, e.g. https://panel.example.com/api.
	APIURL string
	// PollInterval is the delay between job-status polls.
	PollInterval time.Duration
	// TriggerTimeout bounds the job-trigger request only; the backend job
	// itself may run for minutes and is observed via polling.
	TriggerTimeout time.Duration
	RequestTimeout time.Duration
	MetricsAddr    string
	LogLevel       string
	ServiceName    string
	// Username and Password allow non-interactive authentication; when
	// unset, commands that need a session prompt or fail with the API's
	// 401 message.
	Username string
	Password string
}

func Load() (*Config, error) {
	cfg := &Config{
		APIURL:         getEnv("PANEL_API_URL", "http://localhost:3000/api"),
		PollInterval:   getDuration("PANEL_POLL_INTERVAL", 3*time.Second),
		TriggerTimeout: getDuration("PANEL_TRIGGER_TIMEOUT", 5*time.Second),
		RequestTimeout: getDuration("PANEL_REQUEST_TIMEOUT", 30*time.Second),
		MetricsAddr:    getEnv("PANEL_METRICS_ADDR", ""),
		LogLevel:       getEnv("PANEL_LOG_LEVEL", "info"),
		ServiceName:    getEnv("PANEL_SERVICE_NAME", "panelctl"),
		Username:       getEnv("PANEL_USERNAME", ""),
		Password:       getEnv("PANEL_PASSWORD", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
