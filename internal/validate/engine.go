// Package validate implements the document cross-validation engine:
// four independent category validators and the severity-escalation
// aggregation that turns their issues into a single report.
package validate

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/credvet/credvet/internal/model"
)

// Engine runs the four category validators over a claim and its
// extracted document set. Each run is a pure function of its inputs;
// an Engine is safe for concurrent use across requests.
type Engine struct{}

// NewEngine creates a validation engine
func NewEngine() *Engine {
	return &Engine{}
}

// Validate produces a complete validation report for one submission.
// The validators share no mutable state and run concurrently, each
// writing only its own result slot.
func (e *Engine) Validate(personal model.PersonalInfo, academic model.AcademicInfo, docs model.DocumentSet) *model.ValidationReport {
	report := &model.ValidationReport{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		report.Personal = Personal(docs, personal)
	}()
	go func() {
		defer wg.Done()
		report.Academic = Academic(docs, academic)
	}()
	go func() {
		defer wg.Done()
		report.Authenticity = Authenticity(docs)
	}()
	go func() {
		defer wg.Done()
		report.CrossDocument = CrossDocument(docs)
	}()

	wg.Wait()

	report.DeriveOverall()
	return report
}
