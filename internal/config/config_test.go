package config

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"FAQ_CONTENT", "FAQ_HEADING", "FAQ_THEME", "FAQ_LOG_LEVEL"} {
		unsetEnv(t, k)
	}

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FAQ_CONTENT", "/tmp/faq.toml")
	t.Setenv("FAQ_HEADING", "Parking FAQ")
	t.Setenv("FAQ_THEME", "neon")
	t.Setenv("FAQ_LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/faq.toml", c.ContentPath)
	assert.Equal(t, "Parking FAQ", c.Heading)
	assert.Equal(t, "neon", c.Theme)
	assert.Equal(t, log.DebugLevel, c.Level())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "mono theme any case", mutate: func(c *Config) { c.Theme = "MONO" }},
		{name: "blank heading", mutate: func(c *Config) { c.Heading = "  " }, wantErr: "heading"},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "solarized" }, wantErr: "unknown theme"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
