// This file contains environment variable utilities for configuration override.

package dconfig

import (
	"os"
	"strconv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvFloat returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as float64, or the default value if
// not set or invalid.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the EnvPrefix) to a function that
// applies the parsed value onto a Thresholds struct.
type envOverride struct {
	envKey string
	apply  func(*Thresholds, string)
}

// envOverrides is the declarative table of all environment variable
// overrides recognized by FromEnv.
var envOverrides = []envOverride{
	{"KARATSUBA_CUTOFF", func(t *Thresholds, v string) { t.KaratsubaCutoff = getEnvInt("KARATSUBA_CUTOFF", t.KaratsubaCutoff) }},
	{"FFT_CUTOFF", func(t *Thresholds, v string) { t.FFTCutoff = getEnvInt("FFT_CUTOFF", t.FFTCutoff) }},
	{"DOUBLE_DIV_SECTIONS", func(t *Thresholds, v string) {
		t.DoubleDivSections = getEnvInt("DOUBLE_DIV_SECTIONS", t.DoubleDivSections)
	}},
	{"MUL_COST", func(t *Thresholds, v string) { t.MulCost = getEnvFloat("MUL_COST", t.MulCost) }},
	{"FFT_COST", func(t *Thresholds, v string) { t.FFTCost = getEnvFloat("FFT_COST", t.FFTCost) }},
	{"SQUARE_MUL_COST", func(t *Thresholds, v string) { t.SquareMulCost = getEnvFloat("SQUARE_MUL_COST", t.SquareMulCost) }},
	{"SQUARE_FFT_COST", func(t *Thresholds, v string) { t.SquareFFTCost = getEnvFloat("SQUARE_FFT_COST", t.SquareFFTCost) }},
}

// FromEnv returns Default() with any field whose environment variable
// (EnvPrefix + the table key above, e.g. DECIMALINT_KARATSUBA_CUTOFF) is
// set and parses successfully overridden.
//
// Supported environment variables: KARATSUBA_CUTOFF, FFT_CUTOFF,
// DOUBLE_DIV_SECTIONS, MUL_COST, FFT_COST, SQUARE_MUL_COST, SQUARE_FFT_COST
// (all prefixed with DECIMALINT_).
func FromEnv() Thresholds {
	t := Default()
	for _, ov := range envOverrides {
		if val := os.Getenv(EnvPrefix + ov.envKey); val != "" {
			ov.apply(&t, val)
		}
	}
	return t
}
