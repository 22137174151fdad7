package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Intro sources
	Roots     []string
	SourceExt string

	// Auth
	AdminAPIKey string

	// Cache warmup
	Warmup            bool
	WarmupConcurrency int

	// Build stats
	StatsWindow time.Duration

	// Shutdown
	ShutdownTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		Roots:     splitList(os.Getenv("INTRO_ROOTS")),
		SourceExt: envOr("INTRO_EXT", ".html"),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		Warmup:            envBool("WARMUP", false),
		WarmupConcurrency: envInt("WARMUP_CONCURRENCY", 4),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.WarmupConcurrency <= 0 {
		cfg.WarmupConcurrency = 4
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if len(c.Roots) == 0 {
		return fmt.Errorf("INTRO_ROOTS is required")
	}
	if !strings.HasPrefix(c.SourceExt, ".") {
		return fmt.Errorf("INTRO_EXT must start with a dot")
	}
	return nil
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
