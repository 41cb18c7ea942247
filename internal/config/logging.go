package config

import (
	"strings"

	"github.com/rshade/countrytable/internal/logging"
)

// ToLoggingConfig converts the file settings into a logging.Config. When
// debug is set the level is forced to debug and caller info is enabled.
func (l LoggingConfig) ToLoggingConfig(debug bool) logging.Config {
	cfg := logging.DefaultConfig()
	if l.Level != "" {
		cfg.Level = strings.ToLower(l.Level)
	}
	if l.Format != "" {
		cfg.Format = strings.ToLower(l.Format)
	}
	if l.File != "" {
		cfg.Output = logging.OutputFile
		cfg.File = l.File
	}
	if debug {
		cfg.Level = "debug"
		cfg.Caller = true
	}
	return cfg
}

// ForFile returns a copy of the settings that always logs to a file,
// defaulting to DefaultLogFile. Terminal UIs use it to keep stderr clean.
func (l LoggingConfig) ForFile() LoggingConfig {
	if l.File != "" {
		return l
	}
	if path, err := DefaultLogFile(); err == nil {
		l.File = path
	}
	return l
}
