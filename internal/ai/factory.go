package ai

import (
	"fmt"
	"strings"
)

// NewAssessor creates an assessor from configuration. An empty provider
// yields nil: the AI path is disabled, not faked.
func NewAssessor(config Config) (Assessor, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIAssessor(config)

	case "fallback":
		return NewFallbackAssessor(), nil

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %s (supported: openai)", config.Provider)
	}
}
