package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefault(t *testing.T) {
	home := isolate(t)

	cfg := Default()
	assert.Equal(t, "https://restcountries.com/v2", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "en", cfg.Display.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	isolate(t)

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default().API, cfg.API)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "api:\n  base_url: http://localhost:9000/v2\n  timeout: 5s\ndisplay:\n  locale: sv\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/v2", cfg.API.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, "sv", cfg.Display.Locale)
		// Unset sections keep their defaults
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, path, cfg.ConfigPath())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIURL, "http://env.example/v2")
	t.Setenv(EnvAPITimeout, "2s")
	t.Setenv(EnvLocale, "de")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://env.example/v2", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, "de", cfg.Display.Locale)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyEnv_IgnoresBadDuration(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(key string) (string, bool) {
		if key == EnvAPITimeout {
			return "soon", true
		}
		return "", false
	})
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "  " }, ErrEmptyBaseURL},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, ErrInvalidTimeout},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, ErrInvalidTimeout},
		{"bad locale", func(c *Config) { c.Display.Locale = "not a tag!" }, ErrInvalidLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestDisplayTag(t *testing.T) {
	tag, err := DisplayConfig{}.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)

	tag, err = DisplayConfig{Locale: "sv"}.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.Swedish, tag)
}

func TestSaveAndReload(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.SetConfigPath(path)
	cfg.API.Timeout = 12 * time.Second
	cfg.Logging.File = "/var/log/countrytable.log"
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 12s")

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API, reloaded.API)
	assert.Equal(t, cfg.Logging, reloaded.Logging)
}

func TestSave_NoPath(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Save())
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("api.timeout", "45s"))
	got, err := cfg.Get("api.timeout")
	require.NoError(t, err)
	assert.Equal(t, "45s", got)

	require.NoError(t, cfg.Set("display.locale", "fr"))
	assert.Equal(t, "fr", cfg.Display.Locale)

	assert.Error(t, cfg.Set("api.timeout", "later"))

	_, err = cfg.Get("output.format")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.ErrorIs(t, cfg.Set("output.format", "x"), ErrUnknownKey)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{
		"api.base_url",
		"api.timeout",
		"display.locale",
		"logging.file",
		"logging.format",
		"logging.level",
	}, Keys())
}

func TestToLoggingConfig(t *testing.T) {
	l := LoggingConfig{Level: "WARN", Format: "JSON"}
	cfg := l.ToLoggingConfig(false)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.Caller)

	l.File = "/tmp/x.log"
	cfg = l.ToLoggingConfig(true)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "file", cfg.Output)
	assert.Equal(t, "/tmp/x.log", cfg.File)
	assert.True(t, cfg.Caller)
}

func TestForFile(t *testing.T) {
	home := isolate(t)

	l := LoggingConfig{Level: "info"}.ForFile()
	assert.Equal(t, filepath.Join(home, "logs", "countrytable.log"), l.File)

	l = LoggingConfig{File: "/explicit.log"}.ForFile()
	assert.Equal(t, "/explicit.log", l.File)
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIURL, "http://env.example/v2")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://restcountries.com/v2", cfg.API.BaseURL)
	assert.Equal(t, path, cfg.ConfigPath())
}
