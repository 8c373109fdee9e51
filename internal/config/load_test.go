package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value means "unset" for Load.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that Load fills in defaults when nothing is set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"MASTHEAD_LOG_LEVEL":                              "",
		"MASTHEAD_LOG_FORMAT":                             "",
		"MASTHEAD_CATALOG_FREQUENT_CONTRIBUTOR_THRESHOLD": "",
		"MASTHEAD_CATALOG_SAMPLE_REPORT":                  "",
		ConfigFileEnv:                                     "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Catalog.FrequentContributorThreshold)
	assert.True(t, cfg.Catalog.SampleReport)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"MASTHEAD_LOG_LEVEL":                              "debug",
		"MASTHEAD_LOG_FORMAT":                             "text",
		"MASTHEAD_CATALOG_FREQUENT_CONTRIBUTOR_THRESHOLD": "5",
		"MASTHEAD_CATALOG_SAMPLE_REPORT":                  "false",
		ConfigFileEnv:                                     "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 5, cfg.Catalog.FrequentContributorThreshold)
	assert.False(t, cfg.Catalog.SampleReport)
}

// TestLoadFromFile verifies that file values apply and env vars override them.
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masthead.yaml")
	content := []byte("log:\n  level: warn\n  format: text\ncatalog:\n  frequent_contributor_threshold: 3\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	setupEnv(t, map[string]string{
		ConfigFileEnv:         path,
		"MASTHEAD_LOG_LEVEL":  "",
		"MASTHEAD_LOG_FORMAT": "json",
		"MASTHEAD_CATALOG_FREQUENT_CONTRIBUTOR_THRESHOLD": "",
		"MASTHEAD_CATALOG_SAMPLE_REPORT":                  "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "level should come from the file")
	assert.Equal(t, "json", cfg.Log.Format, "env should override the file")
	assert.Equal(t, 3, cfg.Catalog.FrequentContributorThreshold)
	assert.True(t, cfg.Catalog.SampleReport, "unset keys keep their defaults")
}

// TestLoadMissingFile verifies that an unreadable config file is an error.
func TestLoadMissingFile(t *testing.T) {
	setupEnv(t, map[string]string{
		ConfigFileEnv: filepath.Join(t.TempDir(), "missing.yaml"),
	})

	cfg, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that Load validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"MASTHEAD_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Invalid log format",
			envVars: map[string]string{
				"MASTHEAD_LOG_FORMAT": "xml",
			},
		},
		{
			name: "Negative threshold",
			envVars: map[string]string{
				"MASTHEAD_CATALOG_FREQUENT_CONTRIBUTOR_THRESHOLD": "-1",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(ConfigFileEnv, "")
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), "validation failed")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
