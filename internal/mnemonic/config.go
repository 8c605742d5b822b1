package mnemonic

import "time"

// Config holds mnemonic generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one generation, retries included. Zero means none.
	Timeout time.Duration

	// MaxBatch caps how many kanji ForMissed will generate for in one call.
	MaxBatch int
}

// DefaultConfig returns the settings used by the CLI and TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
		MaxBatch:    10,
	}
}
