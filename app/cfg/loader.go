package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Database configuration (optional, consumed by the /test diagnostics
	// endpoint only)
	DatabaseURL  string `long:"database-url" env:"DATABASE_URL" description:"SQLite DSN for the diagnostics database (optional)"`
	DatabaseName string `long:"database-name" env:"DATABASE_NAME" description:"Logical database name reported by the diagnostics endpoint (optional)"`

	// Application configuration
	Port         string `long:"port" env:"PORT" default:"8000" description:"HTTP server port"`
	SettingsFile string `long:"settings-file" env:"SETTINGS_FILE" default:"./settings.yml" description:"Path to the fetch profile settings file"`

	// Application metadata
	Debug       bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	ShowVersion bool `long:"version" description:"Print version and exit"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.ShowVersion {
		fmt.Printf("gramlens %s\n", GetVersion())
		return nil, nil
	}

	cfg := &Cfg{
		DatabaseURL:  raw.DatabaseURL,
		DatabaseName: raw.DatabaseName,
		Port:         raw.Port,
		SettingsFile: raw.SettingsFile,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
