package model

import "time"

// Config is the full credvet configuration
type Config struct {
	Extraction  ExtractionConfig  `yaml:"extraction" mapstructure:"extraction"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	AI          AIConfig          `yaml:"ai" mapstructure:"ai"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// ExtractionConfig controls document text extraction and its cache
type ExtractionConfig struct {
	CacheEnabled bool          `yaml:"cache_enabled" mapstructure:"cache_enabled"`
	CacheDir     string        `yaml:"cache_dir" mapstructure:"cache_dir"`
	MemoryTTL    time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL      time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// AIConfig configures the optional AI-assisted assessor.
// An empty Provider disables the AI path entirely.
type AIConfig struct {
	Provider         string  `yaml:"provider" mapstructure:"provider"`
	Model            string  `yaml:"model" mapstructure:"model"`
	APIKey           string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL          string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout          int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens        int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerMin   float64 `yaml:"requests_per_min" mapstructure:"requests_per_min"`
	FallbackOnError  bool    `yaml:"fallback_on_error" mapstructure:"fallback_on_error"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
	Color         bool `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			CacheEnabled: true,
			CacheDir:     "", // resolved to ~/.credvet/cache at startup
			MemoryTTL:    30 * time.Minute,
			DiskTTL:      24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		AI: AIConfig{
			Provider:        "", // disabled by default
			Model:           "",
			Timeout:         30,
			MaxTokens:       1500,
			RequestsPerMin:  30,
			FallbackOnError: true,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
			Color:         true,
		},
	}
}
