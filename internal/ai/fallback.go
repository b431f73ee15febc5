package ai

import (
	"context"
	"time"

	"github.com/credvet/credvet/internal/model"
)

// FallbackAssessor is used when no AI provider is configured or the
// configured one is unreachable. It returns a fixed Warning-status
// report so callers always get the standard report shape and never
// mistake an unavailable assessor for a clean pass.
type FallbackAssessor struct{}

// NewFallbackAssessor creates the fallback assessor
func NewFallbackAssessor() *FallbackAssessor {
	return &FallbackAssessor{}
}

// Name returns the assessor name
func (a *FallbackAssessor) Name() string {
	return "fallback"
}

// IsAvailable always reports true: the fallback is always usable
func (a *FallbackAssessor) IsAvailable(ctx context.Context) bool {
	return true
}

// Assess returns the fixed Warning-status report
func (a *FallbackAssessor) Assess(ctx context.Context, personal model.PersonalInfo, academic model.AcademicInfo, docs model.DocumentSet) (*model.ValidationReport, error) {
	unavailable := []model.Issue{{
		Type:        "ai_unavailable",
		Description: "AI-assisted validation is not available; only rule-based validation was performed",
		Severity:    model.SeverityWarning,
	}}

	report := &model.ValidationReport{
		CreatedAt:     time.Now().UTC(),
		Personal:      model.NewCategoryResult(unavailable),
		Academic:      model.NewCategoryResult(nil),
		Authenticity:  model.NewCategoryResult(nil),
		CrossDocument: model.NewCategoryResult(nil),
	}
	report.DeriveOverall()

	return report, nil
}
