// Package envcfg reads and validates the process-wide environment
// overrides the detection engine and executor consult. Nothing is cached:
// every call, kill switches included, reads the current environment (tests
// flip these variables mid-run).
package envcfg

import (
	"fmt"
	"os"
	"strconv"
)

// Names of the environment variables this package understands.
const (
	EnvConcurrency       = "SIDE_QUEST_CONCURRENCY"
	EnvItemTimeoutMS     = "SIDE_QUEST_ITEM_TIMEOUT_MS"
	EnvDetectionTimeout  = "SIDE_QUEST_DETECTION_TIMEOUT_MS"
	EnvNoSquashDetection = "SIDE_QUEST_NO_SQUASH_DETECTION"
	EnvNoDetection       = "SIDE_QUEST_NO_DETECTION"
	EnvDebug             = "SIDE_QUEST_DEBUG"
)

// Defaults mirror §4.4/§6 of the spec.
const (
	DefaultConcurrency      = 4
	DefaultItemTimeoutMS    = 10_000
	DefaultDetectionTimeMS  = 5_000
	DefaultMaxSquashCommits = 50
)

// PositiveInt reads name from the environment, returning fallback when
// unset. A set-but-invalid value (not an integer, zero, or negative) is a
// startup error: a silently-degraded zero concurrency would busy-loop or
// stall, so this is rejected rather than clamped.
func PositiveInt(name string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid integer", name, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s=%d must be a positive integer", name, n)
	}
	return n, nil
}

// Concurrency returns the configured worker-pool size.
func Concurrency() (int, error) {
	return PositiveInt(EnvConcurrency, DefaultConcurrency)
}

// ItemTimeoutMS returns the per-item deadline in milliseconds.
func ItemTimeoutMS() (int, error) {
	return PositiveInt(EnvItemTimeoutMS, DefaultItemTimeoutMS)
}

// DetectionTimeoutMS returns the Layer-3 cherry-probe deadline in
// milliseconds.
func DetectionTimeoutMS() (int, error) {
	return PositiveInt(EnvDetectionTimeout, DefaultDetectionTimeMS)
}

// isSet reports whether the named env var is exactly "1". Re-read on every
// call by design — these are kill switches meant to be toggled mid test run.
func isSet(name string) bool {
	return os.Getenv(name) == "1"
}

// NoSquashDetection reports whether SIDE_QUEST_NO_SQUASH_DETECTION=1 is set.
func NoSquashDetection() bool { return isSet(EnvNoSquashDetection) }

// NoDetection reports whether SIDE_QUEST_NO_DETECTION=1 is set.
func NoDetection() bool { return isSet(EnvNoDetection) }

// Debug reports whether SIDE_QUEST_DEBUG=1 is set.
func Debug() bool { return isSet(EnvDebug) }
