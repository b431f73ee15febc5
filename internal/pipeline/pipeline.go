// Package pipeline wires the stages of one validation run: case
// loading, document extraction, the rule-based engine, and the
// optional AI-assisted assessment.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/credvet/credvet/internal/ai"
	"github.com/credvet/credvet/internal/cache"
	"github.com/credvet/credvet/internal/extract"
	"github.com/credvet/credvet/internal/model"
	"github.com/credvet/credvet/internal/validate"
	"github.com/credvet/credvet/internal/worker"
)

// Pipeline runs complete validation cases
type Pipeline struct {
	extractor *extract.Extractor
	engine    *validate.Engine
	assessor  ai.Assessor // nil when the AI path is disabled
	limiter   *worker.Limiter
	renderer  *Renderer
	config    *model.Config
}

// Result bundles the deterministic report with the optional AI one
type Result struct {
	Case     *model.Case
	Report   *model.ValidationReport
	AIReport *model.ValidationReport
}

// New creates a pipeline from configuration
func New(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Extraction.CacheEnabled && cfg.Extraction.CacheDir != "" {
		c = cache.NewLayeredCache(cfg.Extraction.MemoryTTL, cfg.Extraction.CacheDir, cfg.Extraction.DiskTTL)
	} else if cfg.Extraction.CacheEnabled {
		c = cache.NewMemoryCache(cfg.Extraction.MemoryTTL, cfg.Extraction.MemoryTTL)
	}

	var assessor ai.Assessor
	if cfg.AI.Provider != "" {
		a, err := ai.NewAssessor(ai.ConfigFromModel(cfg.AI))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize AI assessor: %v\n", err)
		} else {
			assessor = a
		}
	}

	return &Pipeline{
		extractor: extract.NewExtractor(c),
		engine:    validate.NewEngine(),
		assessor:  assessor,
		limiter:   worker.NewLimiter(cfg.AI.RequestsPerMin, 1),
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}
}

// RenderResult renders the result to the requested outputs and prints
// the terminal summary.
func (p *Pipeline) RenderResult(result *Result, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result.Report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ JSON report: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Markdown report: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result.Report)

	if result.AIReport != nil {
		fmt.Println("AI assessment:")
		p.renderer.RenderSummary(result.AIReport)
	}

	return nil
}

// Run validates one loaded case
func (p *Pipeline) Run(ctx context.Context, c *model.Case) (*Result, error) {
	docs, err := p.loadDocuments(c)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Case:   c,
		Report: p.engine.Validate(c.Personal, c.Academic, docs),
	}

	// The AI pass runs after and beside the engine; its failure never
	// fails the run.
	if p.assessor != nil {
		if err := p.limiter.Wait(ctx, p.assessor.Name()); err != nil {
			return result, nil
		}
		aiReport, err := p.assessor.Assess(ctx, c.Personal, c.Academic, docs)
		switch {
		case err == nil:
			result.AIReport = aiReport
		case p.config.AI.FallbackOnError:
			fallback, _ := ai.NewFallbackAssessor().Assess(ctx, c.Personal, c.Academic, docs)
			result.AIReport = fallback
			fmt.Fprintf(os.Stderr, "Warning: AI assessment failed, using fallback: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Warning: AI assessment failed: %v\n", err)
		}
	}

	return result, nil
}

// RunCase loads and validates a case file (worker.Runner)
func (p *Pipeline) RunCase(ctx context.Context, path string) (*model.ValidationReport, error) {
	c, err := model.LoadCase(path)
	if err != nil {
		return nil, err
	}

	result, err := p.Run(ctx, c)
	if err != nil {
		return nil, err
	}
	return result.Report, nil
}

// loadDocuments assembles the document set: extracted files first,
// then pre-extracted JSON entries, which take precedence per type.
func (p *Pipeline) loadDocuments(c *model.Case) (model.DocumentSet, error) {
	docs := make(model.DocumentSet)

	if len(c.Documents) > 0 {
		extracted, err := p.extractor.ExtractSet(c.Documents)
		if err != nil {
			return nil, err
		}
		for docType, doc := range extracted {
			docs[docType] = doc
		}
	}

	if c.Extracted != "" {
		pre, err := extract.LoadExtracted(c.Extracted)
		if err != nil {
			return nil, err
		}
		for docType, doc := range pre {
			docs[docType] = doc
		}
	}

	return docs, nil
}
