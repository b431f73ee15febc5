package worker

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/credvet/credvet/internal/model"
)

type stubRunner struct {
	calls int32
}

func (r *stubRunner) RunCase(ctx context.Context, path string) (*model.ValidationReport, error) {
	atomic.AddInt32(&r.calls, 1)
	report := &model.ValidationReport{
		Personal:      model.NewCategoryResult(nil),
		Academic:      model.NewCategoryResult(nil),
		Authenticity:  model.NewCategoryResult(nil),
		CrossDocument: model.NewCategoryResult(nil),
	}
	report.DeriveOverall()
	return report, nil
}

func TestBatchProcessor_ProcessCases(t *testing.T) {
	runner := &stubRunner{}
	processor := NewBatchProcessor(runner, 3)

	paths := []string{"a.yaml", "b.yaml", "c.yaml", "d.yaml", "e.yaml"}
	results := processor.ProcessCases(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("Expected %d results, got %d", len(paths), len(results))
	}
	if got := atomic.LoadInt32(&runner.calls); got != int32(len(paths)) {
		t.Errorf("Expected %d runner calls, got %d", len(paths), got)
	}
	for _, result := range results {
		if result.GetError() != nil {
			t.Errorf("Unexpected error for %s: %v", result.Path, result.Err)
		}
		if result.Report == nil || result.Report.Overall != model.StatusPassed {
			t.Errorf("Expected a passed report for %s", result.Path)
		}
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(&stubRunner{}, 2)

	results := processor.ProcessCases(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadCaseList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.txt")
	content := "a.yaml\n\n# comment\nb.yaml\na.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	paths, err := ReadCaseList(path)
	if err != nil {
		t.Fatalf("read list: %v", err)
	}

	if len(paths) != 2 || paths[0] != "a.yaml" || paths[1] != "b.yaml" {
		t.Errorf("Expected deduplicated [a.yaml b.yaml], got %v", paths)
	}
}

func TestLimiter_AllowRespectsBurst(t *testing.T) {
	// 60 requests/minute = 1/s with burst 2: two immediate requests
	// pass, the third is rejected.
	limiter := NewLimiter(60, 2)

	if !limiter.Allow("openai") {
		t.Error("Expected first request to be allowed")
	}
	if !limiter.Allow("openai") {
		t.Error("Expected second request to be allowed")
	}
	if limiter.Allow("openai") {
		t.Error("Expected third request to exceed the burst")
	}

	// A different key has its own budget
	if !limiter.Allow("other") {
		t.Error("Expected separate key to have its own limiter")
	}
}

func TestPool_CollectsAllResults(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	runner := &stubRunner{}
	for i := 0; i < 10; i++ {
		pool.Submit(&CaseJob{Path: "case.yaml", Runner: runner})
	}

	results := pool.Wait()
	if len(results) != 10 {
		t.Errorf("Expected 10 results, got %d", len(results))
	}
}
