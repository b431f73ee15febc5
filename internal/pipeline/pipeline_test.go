package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/credvet/credvet/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func newTestConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Extraction.CacheEnabled = false
	cfg.AI.Provider = ""
	return cfg
}

func TestRunCase_WithDocumentFiles(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "id.txt",
		"Ruritania State University\nStudent ID Card\nName: John Smith, ID: RSU-44821\nDate: 01/02/2020\n")
	writeFile(t, dir, "transcript.txt",
		"Ruritania State University\nOfficial Transcript\nName: John Smith, record 2188\nCS 101 Introduction to Computing Grade: A\nMATH 201 Linear Algebra Grade: B+\nDate: 03/06/2024\n")

	casePath := writeFile(t, dir, "case.yaml", `
personal:
  name: John Smith
academic:
  university: Ruritania State University
documents:
  student_id: `+filepath.Join(dir, "id.txt")+`
  transcript: `+filepath.Join(dir, "transcript.txt")+`
`)

	p := New(newTestConfig())
	report, err := p.RunCase(context.Background(), casePath)
	if err != nil {
		t.Fatalf("RunCase failed: %v", err)
	}

	if report.Overall == model.StatusFailed {
		t.Errorf("Expected non-failed overall for consistent case, got %s", report.Overall)
	}
	if report.Personal.Status != model.StatusPassed {
		t.Errorf("Expected personal Passed, got %s: %+v", report.Personal.Status, report.Personal.Issues)
	}
	if report.Academic.Status != model.StatusPassed {
		t.Errorf("Expected academic Passed, got %s: %+v", report.Academic.Status, report.Academic.Issues)
	}
	if report.ID == "" {
		t.Error("Expected report ID to be set")
	}
}

func TestRunCase_ExtractedTakesPrecedence(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "id.txt", "completely unrelated text")

	extracted := map[model.DocType]model.ExtractedDocument{
		model.DocStudentID: {
			Text: "ruritania state university student id name: maria garcia id number: 7001 date: 01/02/2020",
			Meta: model.Metadata{StudentID: &model.StudentIDMeta{IDNumber: "7001"}},
		},
	}
	data, err := json.Marshal(extracted)
	if err != nil {
		t.Fatalf("Failed to marshal extracted docs: %v", err)
	}
	extractedPath := writeFile(t, dir, "extracted.json", string(data))

	casePath := writeFile(t, dir, "case.yaml", `
personal:
  name: Maria Garcia
documents:
  student_id: `+filepath.Join(dir, "id.txt")+`
extracted: `+extractedPath+`
`)

	p := New(newTestConfig())
	report, err := p.RunCase(context.Background(), casePath)
	if err != nil {
		t.Fatalf("RunCase failed: %v", err)
	}

	// The pre-extracted text contains the name; the on-disk file does
	// not. Passing the name check proves precedence.
	for _, issue := range report.Personal.Issues {
		if issue.Type == "name_mismatch" {
			t.Errorf("Expected name to match via pre-extracted text, got issue: %+v", issue)
		}
	}
}

func TestRunCase_MissingCaseFile(t *testing.T) {
	p := New(newTestConfig())
	if _, err := p.RunCase(context.Background(), "/nonexistent/case.yaml"); err == nil {
		t.Fatal("Expected error for missing case file")
	}
}

func TestRenderer_JSONAndMarkdown(t *testing.T) {
	dir := t.TempDir()

	report := &model.ValidationReport{
		ID:        "test-id",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Personal:  model.NewCategoryResult(nil),
		Academic: model.NewCategoryResult([]model.Issue{
			{Type: "university_mismatch", Description: "University not found", Severity: model.SeverityCritical},
		}),
		Authenticity:  model.NewCategoryResult(nil),
		CrossDocument: model.NewCategoryResult(nil),
	}
	report.DeriveOverall()

	r := NewRenderer(true)

	jsonPath := filepath.Join(dir, "out", "report.json")
	if err := r.RenderJSON(report, jsonPath); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("Failed to read JSON report: %v", err)
	}
	var decoded model.ValidationReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("JSON report does not parse: %v", err)
	}
	if decoded.Overall != model.StatusFailed {
		t.Errorf("Expected Failed overall in JSON, got %s", decoded.Overall)
	}

	mdPath := filepath.Join(dir, "report.md")
	if err := r.RenderMarkdown(report, mdPath); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("Failed to read Markdown report: %v", err)
	}
	text := string(md)
	for _, want := range []string{
		"# Validation Report",
		"**Overall status:** Failed",
		"## Academic information",
		"university_mismatch",
		"No issues found.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Markdown report missing %q", want)
		}
	}
	if !strings.Contains(text, "Generated by credvet") {
		t.Error("Expected footer when includeFooter is true")
	}

	noFooter := NewRenderer(false)
	mdPath2 := filepath.Join(dir, "nofooter.md")
	if err := noFooter.RenderMarkdown(report, mdPath2); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	md2, _ := os.ReadFile(mdPath2)
	if strings.Contains(string(md2), "Generated by credvet") {
		t.Error("Expected no footer when includeFooter is false")
	}
}
