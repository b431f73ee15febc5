package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/credvet/credvet/internal/model"
)

// Runner validates one case file and returns its report
type Runner interface {
	RunCase(ctx context.Context, path string) (*model.ValidationReport, error)
}

// CaseJob validates a single case file
type CaseJob struct {
	Path   string
	Runner Runner
}

// Execute runs the case validation
func (j *CaseJob) Execute(ctx context.Context) Result {
	report, err := j.Runner.RunCase(ctx, j.Path)
	return &CaseResult{
		Path:   j.Path,
		Report: report,
		Err:    err,
	}
}

// CaseResult is the outcome of validating one case file
type CaseResult struct {
	Path   string
	Report *model.ValidationReport
	Err    error
}

// GetError returns the error from the case result
func (r *CaseResult) GetError() error {
	return r.Err
}

// BatchProcessor validates many case files concurrently
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// ProcessCases validates the given case files concurrently
func (b *BatchProcessor) ProcessCases(ctx context.Context, paths []string) []*CaseResult {
	if len(paths) == 0 {
		return []*CaseResult{}
	}

	pool := NewPoolSize(b.concurrency, len(paths))
	pool.Start()

	for _, path := range paths {
		pool.Submit(&CaseJob{Path: path, Runner: b.runner})
	}

	results := pool.Wait()

	caseResults := make([]*CaseResult, len(results))
	for i, result := range results {
		caseResults[i] = result.(*CaseResult)
	}
	return caseResults
}

// ProcessList reads case file paths from a list file and validates them
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*CaseResult, error) {
	paths, err := ReadCaseList(listPath)
	if err != nil {
		return nil, fmt.Errorf("read case list: %w", err)
	}
	return b.ProcessCases(ctx, paths), nil
}

// ReadCaseList reads case file paths, one per line, skipping blanks,
// comments, and duplicates.
func ReadCaseList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan list: %w", err)
	}
	return paths, nil
}
