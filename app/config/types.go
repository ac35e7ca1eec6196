package config

// Settings is the outbound fetch profile: how the service presents itself to
// Instagram and how long it waits for an answer.
type Settings struct {
	UserAgent      string `yaml:"user_agent"`
	AcceptLanguage string `yaml:"accept_language"`
	FetchTimeout   int    `yaml:"fetch_timeout"` // seconds
	MaxBodySize    int64  `yaml:"max_body_size"` // bytes
}
