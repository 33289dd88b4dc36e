package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	// DataDir is where the per-entity data files live.
	DataDir string

	// Delimiter separates fields in the data files. Exactly one
	// character; record values must not contain it.
	Delimiter string

	// LoanPeriodDays is added to the loan date to compute the due date.
	LoanPeriodDays int

	// UseMemoryDB swaps the flat-file store for the in-memory one.
	UseMemoryDB bool

	// Debug enables development logging.
	Debug bool
}

// LoadFromEnv loads configuration from environment variables, falling
// back to defaults for anything unset.
func LoadFromEnv() (*Config, error) {
	config := &Config{
		DataDir:        "./data",
		Delimiter:      ",",
		LoanPeriodDays: 14,
	}

	if dir := os.Getenv("LIBRARY_DATA_DIR"); dir != "" {
		config.DataDir = dir
	}

	if delim := os.Getenv("LIBRARY_FILE_DELIMITER"); delim != "" {
		if len(delim) != 1 {
			return nil, fmt.Errorf("LIBRARY_FILE_DELIMITER must be a single character, got %q", delim)
		}
		config.Delimiter = delim
	}

	if daysStr := os.Getenv("LIBRARY_LOAN_PERIOD_DAYS"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LIBRARY_LOAN_PERIOD_DAYS: %w", err)
		}
		if days <= 0 {
			return nil, fmt.Errorf("LIBRARY_LOAN_PERIOD_DAYS must be positive, got %d", days)
		}
		config.LoanPeriodDays = days
	}

	config.UseMemoryDB = os.Getenv("LIBRARY_USE_MEMORY_DB") == "true"
	config.Debug = os.Getenv("LIBRARY_DEBUG") == "true"

	return config, nil
}
