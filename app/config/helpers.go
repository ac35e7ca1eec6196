package config

import (
	"time"
)

// GetFetchTimeout returns the fetch timeout as time.Duration
func (s *Settings) GetFetchTimeout() time.Duration {
	if s.FetchTimeout <= 0 {
		return DefaultFetchTimeout * time.Second
	}
	return time.Duration(s.FetchTimeout) * time.Second
}

// GetMaxBodySize returns the response body cap in bytes
func (s *Settings) GetMaxBodySize() int64 {
	if s.MaxBodySize <= 0 {
		return DefaultMaxBodySize
	}
	return s.MaxBodySize
}
