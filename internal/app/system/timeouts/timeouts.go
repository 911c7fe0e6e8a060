// Package timeouts provides centralized timeout values for handler operations.
//
// These are used with context.WithTimeout around database calls in HTTP
// handlers so every store operation has a bound. Defaults can be overridden
// at startup via ConfigureFromEnv.
//
// Tiers:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries and simple writes
//   - Long: operations touching multiple collections (statistics, quotes, seed)
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used if nothing is configured).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for multi-collection operations.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// ConfigureFromEnv reads timeout overrides from the environment. Variables
// (all optional): TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM, TIMEOUT_LONG,
// each a Go duration string like "5s" or "500ms". Invalid values are ignored.
// Returns the number of timeouts overridden.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	set := func(env string, dst *time.Duration) {
		if v := os.Getenv(env); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*dst = d
				configured++
			}
		}
	}
	set("TIMEOUT_PING", &ping)
	set("TIMEOUT_SHORT", &short)
	set("TIMEOUT_MEDIUM", &medium)
	set("TIMEOUT_LONG", &long)

	return configured
}

// Reset restores all timeouts to their default values. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	long = DefaultLong
}
