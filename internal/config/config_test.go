package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("LIBRARY_DATA_DIR", "")
	t.Setenv("LIBRARY_FILE_DELIMITER", "")
	t.Setenv("LIBRARY_LOAN_PERIOD_DAYS", "")
	t.Setenv("LIBRARY_USE_MEMORY_DB", "")
	t.Setenv("LIBRARY_DEBUG", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, 14, cfg.LoanPeriodDays)
	assert.False(t, cfg.UseMemoryDB)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("LIBRARY_DATA_DIR", "/tmp/catalog")
	t.Setenv("LIBRARY_FILE_DELIMITER", ";")
	t.Setenv("LIBRARY_LOAN_PERIOD_DAYS", "30")
	t.Setenv("LIBRARY_USE_MEMORY_DB", "true")
	t.Setenv("LIBRARY_DEBUG", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog", cfg.DataDir)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, 30, cfg.LoanPeriodDays)
	assert.True(t, cfg.UseMemoryDB)
	assert.True(t, cfg.Debug)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "multi-character delimiter", key: "LIBRARY_FILE_DELIMITER", value: "||"},
		{name: "non-numeric loan period", key: "LIBRARY_LOAN_PERIOD_DAYS", value: "soon"},
		{name: "zero loan period", key: "LIBRARY_LOAN_PERIOD_DAYS", value: "0"},
		{name: "negative loan period", key: "LIBRARY_LOAN_PERIOD_DAYS", value: "-3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}
