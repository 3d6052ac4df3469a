package model

import "time"

// Config is the complete astros configuration
type Config struct {
	HTTP     HTTPConfig     `yaml:"http" mapstructure:"http"`
	Sources  SourcesConfig  `yaml:"sources" mapstructure:"sources"`
	Resolver ResolverConfig `yaml:"resolver" mapstructure:"resolver"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the shared HTTP client
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// SourcesConfig holds the service endpoints
type SourcesConfig struct {
	RosterURL  string `yaml:"roster_url" mapstructure:"roster_url"`
	SummaryURL string `yaml:"summary_url" mapstructure:"summary_url"`
	RelatedURL string `yaml:"related_url" mapstructure:"related_url"`
}

// ResolverConfig tunes disambiguation resolution
type ResolverConfig struct {
	RelatedPages int      `yaml:"related_pages" mapstructure:"related_pages"`
	Keywords     []string `yaml:"keywords" mapstructure:"keywords"`
	Concurrency  int      `yaml:"concurrency" mapstructure:"concurrency"` // <= 0 means unbounded
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose        bool   `yaml:"verbose" mapstructure:"verbose"`
	DefaultVehicle string `yaml:"default_vehicle" mapstructure:"default_vehicle"`
}

// DefaultKeywords are matched against related page descriptions
var DefaultKeywords = []string{"astronaut", "NASA", "space", "cosmonaut"}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "astros/0.1 (+https://github.com/ppiankov/astros)",
			MaxBodyBytes: 2_000_000,
		},
		Sources: SourcesConfig{
			RosterURL:  "http://api.open-notify.org/astros.json",
			SummaryURL: "https://en.wikipedia.org/api/rest_v1/page/summary",
			RelatedURL: "https://en.wikipedia.org/api/rest_v1/page/related",
		},
		Resolver: ResolverConfig{
			RelatedPages: 50,
			Keywords:     append([]string(nil), DefaultKeywords...),
			Concurrency:  10,
		},
		Output: OutputConfig{
			DefaultVehicle: "ISS",
		},
	}
}
