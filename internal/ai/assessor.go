// Package ai implements the optional AI-assisted assessor: an injected
// capability that produces a report with the same shape and status
// rules as the deterministic engine, without ever replacing it.
package ai

import (
	"context"

	"github.com/credvet/credvet/internal/model"
)

// Assessor is the contract for an AI-assisted validation pass
type Assessor interface {
	// Name returns the assessor name
	Name() string

	// Assess cross-validates the claim against the extracted documents
	// and returns a report in the standard ValidationReport shape.
	Assess(ctx context.Context, personal model.PersonalInfo, academic model.AcademicInfo, docs model.DocumentSet) (*model.ValidationReport, error)

	// IsAvailable checks whether the assessor is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Config holds assessor configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model is the provider-specific model name
	Model string

	// APIKey authenticates against the provider
	APIKey string

	// BaseURL overrides the provider endpoint (for proxies/self-hosting)
	BaseURL string

	// Timeout bounds one assessment call, in seconds
	Timeout int

	// MaxTokens limits the response length
	MaxTokens int
}

// ConfigFromModel converts the application AI config
func ConfigFromModel(cfg model.AIConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}
