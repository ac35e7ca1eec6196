package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in fetch profile, matching a current desktop Chrome. Operators can
// override any field through the settings file without a rebuild.
const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0 Safari/537.36"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
	DefaultFetchTimeout   = 12       // seconds
	DefaultMaxBodySize    = 10 << 20 // bytes
)

// Loader handles loading and validation of the fetch profile settings file.
type Loader struct {
	path string
}

// NewLoader creates a new settings loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the settings file. A missing file is not an error; the built-in
// defaults are returned instead. Fields left unset in the file are filled
// with their defaults.
func (l *Loader) Load() (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			l.setDefaults(settings)
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", l.path, err)
	}

	l.setDefaults(settings)

	if err := l.validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", l.path, err)
	}

	return settings, nil
}

// setDefaults applies default values to unset fields.
func (l *Loader) setDefaults(settings *Settings) {
	if settings.UserAgent == "" {
		settings.UserAgent = DefaultUserAgent
	}
	if settings.AcceptLanguage == "" {
		settings.AcceptLanguage = DefaultAcceptLanguage
	}
	if settings.FetchTimeout == 0 {
		settings.FetchTimeout = DefaultFetchTimeout
	}
	if settings.MaxBodySize == 0 {
		settings.MaxBodySize = DefaultMaxBodySize
	}
}

// validate validates the settings.
func (l *Loader) validate(settings *Settings) error {
	if settings.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout must be non-negative")
	}
	if settings.MaxBodySize < 0 {
		return fmt.Errorf("max body size must be non-negative")
	}
	return nil
}
