package cfg

type Cfg struct {
	// Database configuration (optional diagnostics collaborator)
	DatabaseURL  string
	DatabaseName string

	// Application configuration
	Port         string
	SettingsFile string

	// Application metadata
	Debug   bool
	Version string
}
