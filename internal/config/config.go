package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rshade/countrytable/internal/country"
)

// Environment variables recognised by the configuration loader.
const (
	EnvHome       = "COUNTRYTABLE_HOME"
	EnvAPIURL     = "COUNTRYTABLE_API_URL"
	EnvAPITimeout = "COUNTRYTABLE_API_TIMEOUT"
	EnvLocale     = "COUNTRYTABLE_LOCALE"
	EnvLogLevel   = "COUNTRYTABLE_LOG_LEVEL"
	EnvLogFormat  = "COUNTRYTABLE_LOG_FORMAT"
	EnvLogFile    = "COUNTRYTABLE_LOG_FILE"
)

const (
	configFileName = "config.yaml"
	defaultLocale  = "en"
)

// Validation and lookup errors.
var (
	ErrEmptyBaseURL   = errors.New("api.base_url must not be empty")
	ErrInvalidTimeout = errors.New("api.timeout must be positive")
	ErrInvalidLocale  = errors.New("display.locale is not a valid language tag")
	ErrUnknownKey     = errors.New("unknown configuration key")
)

// Config is the countrytable configuration file.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	configPath string
}

// APIConfig selects the country data endpoint.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url"`
	Timeout time.Duration `yaml:"timeout"  json:"timeout"`
}

// DisplayConfig controls presentation.
type DisplayConfig struct {
	// Locale is the BCP 47 tag used to collate country names.
	Locale string `yaml:"locale" json:"locale"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	path := ""
	if dir, err := GetConfigDir(); err == nil {
		path = filepath.Join(dir, configFileName)
	}
	return &Config{
		API: APIConfig{
			BaseURL: country.DefaultBaseURL,
			Timeout: country.DefaultTimeout,
		},
		Display:    DisplayConfig{Locale: defaultLocale},
		Logging:    LoggingConfig{Level: "info", Format: "console"},
		configPath: path,
	}
}

// New returns the defaults overlaid with the config file (if present) and
// the environment. A broken config file is ignored here; use Load to see
// the error.
func New() *Config {
	cfg := Default()
	if loaded, err := Load(cfg.configPath); err == nil {
		cfg = loaded
	} else {
		cfg.ApplyEnv(os.LookupEnv)
	}
	return cfg
}

// Load reads the file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFile reads the file at path over the defaults without consulting the
// environment. Use it when the result will be saved back.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	cfg.configPath = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables found through lookup. Unparseable
// durations are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookup(EnvAPITimeout); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.API.Timeout = d
		}
	}
	if v, ok := lookup(EnvLocale); ok && v != "" {
		c.Display.Locale = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.Logging.File = v
	}
}

// Validate checks the settings the application depends on.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.API.BaseURL) == "" {
		errs = append(errs, ErrEmptyBaseURL)
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.API.Timeout))
	}
	if _, err := c.Display.Tag(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Tag parses the display locale. An empty locale means English.
func (d DisplayConfig) Tag() (language.Tag, error) {
	if d.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(d.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidLocale, d.Locale)
	}
	return tag, nil
}

// ConfigPath returns the file this configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Keys returns the dotted keys understood by Get and Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(accessors))
	for k := range accessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "api.base_url".
func (c *Config) Get(key string) (string, error) {
	acc, ok := accessors[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return acc.get(c), nil
}

// Set assigns a dotted key from its string form.
func (c *Config) Set(key, value string) error {
	acc, ok := accessors[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return acc.set(c, value)
}

type accessor struct {
	get func(*Config) string
	set func(*Config, string) error
}

//nolint:gochecknoglobals // Static lookup table.
var accessors = map[string]accessor{
	"api.base_url": {
		get: func(c *Config) string { return c.API.BaseURL },
		set: func(c *Config, v string) error { c.API.BaseURL = v; return nil },
	},
	"api.timeout": {
		get: func(c *Config) string { return c.API.Timeout.String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("api.timeout: %w", err)
			}
			c.API.Timeout = d
			return nil
		},
	},
	"display.locale": {
		get: func(c *Config) string { return c.Display.Locale },
		set: func(c *Config, v string) error { c.Display.Locale = v; return nil },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = v; return nil },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error { c.Logging.Format = v; return nil },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
}
