// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used when a graph is fetched from a
// harvest endpoint instead of a local file.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "fdk-parser/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Token is sent as a bearer token to harvest endpoints that require
	// one. It is loaded from the secrets directory, never from config files.
	Token string `json:"-" yaml:"-" mapstructure:"-"`
}

// ParserConfig holds settings for resolving and merging records.
type ParserConfig struct {
	// Namespace is the IRI prefix of catalog records minted by this
	// service. Harvest records outside it are ignored.
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`

	// MaxParallel bounds how many dialect strategies run at once for one
	// record (default 4; 1 runs them sequentially).
	MaxParallel int `json:"max_parallel" yaml:"max_parallel" mapstructure:"max_parallel"`
}

// StoreConfig holds settings for the local record store.
type StoreConfig struct {
	// Dir is the directory holding records.db and the export files.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// Config groups all settings read by the CLI.
type Config struct {
	Parser   ParserConfig `json:"parser" yaml:"parser" mapstructure:"parser"`
	HTTP     HTTPConfig   `json:"http" yaml:"http" mapstructure:"http"`
	Store    StoreConfig  `json:"store" yaml:"store" mapstructure:"store"`
	LogLevel string       `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{
			Namespace:   "https://fellesdatakatalog.digdir.no/",
			MaxParallel: 4,
		},
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			UserAgent:  "fdk-parser/dev",
			MaxRetries: 5,
		},
		Store: StoreConfig{
			Dir: "records",
		},
		LogLevel: "info",
	}
}
