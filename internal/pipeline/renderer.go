package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/credvet/credvet/internal/model"
	"github.com/fatih/color"
)

// Renderer writes validation reports as JSON, Markdown, and a colored
// terminal summary.
type Renderer struct {
	includeFooter bool
	statusColors  map[model.Status]*color.Color
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{
		includeFooter: includeFooter,
		statusColors: map[model.Status]*color.Color{
			model.StatusPassed:  color.New(color.FgGreen),
			model.StatusWarning: color.New(color.FgYellow),
			model.StatusFailed:  color.New(color.FgRed),
		},
	}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.ValidationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// categoryTitles follows the order of ValidationReport.Categories
var categoryTitles = []string{
	"Personal information",
	"Academic information",
	"Document authenticity",
	"Cross-document consistency",
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.ValidationReport, path string) error {
	var b strings.Builder

	b.WriteString("# Validation Report\n\n")
	fmt.Fprintf(&b, "**Overall status:** %s\n\n", report.Overall)
	fmt.Fprintf(&b, "Report ID: `%s`  \n", report.ID)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.CreatedAt.Format(time.RFC3339))

	for i, cat := range report.Categories() {
		fmt.Fprintf(&b, "## %s\n\n", categoryTitles[i])
		fmt.Fprintf(&b, "Status: **%s**\n\n", cat.Status)
		if len(cat.Issues) == 0 {
			b.WriteString("No issues found.\n\n")
			continue
		}
		b.WriteString("| Severity | Type | Description |\n")
		b.WriteString("|----------|------|-------------|\n")
		for _, issue := range cat.Issues {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", issue.Severity, issue.Type, issue.Description)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*Generated by credvet. Statuses are derived from rule-based checks over extracted document text.*\n")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderSummary prints a colored one-screen summary to stdout
func (r *Renderer) RenderSummary(report *model.ValidationReport) {
	fmt.Println()
	fmt.Print("Overall: ")
	r.statusColor(report.Overall).Println(string(report.Overall))
	fmt.Println()

	for i, cat := range report.Categories() {
		fmt.Printf("  %-30s ", categoryTitles[i])
		r.statusColor(cat.Status).Printf("%-8s", string(cat.Status))
		fmt.Printf(" (%d issues)\n", len(cat.Issues))
	}

	critical := 0
	for _, issue := range report.AllIssues() {
		if issue.Severity == model.SeverityCritical {
			critical++
		}
	}
	if critical > 0 {
		fmt.Println()
		r.statusColor(model.StatusFailed).Printf("  %d critical issue(s):\n", critical)
		for _, issue := range report.AllIssues() {
			if issue.Severity == model.SeverityCritical {
				fmt.Printf("    - [%s] %s\n", issue.Type, issue.Description)
			}
		}
	}
	fmt.Println()
}

func (r *Renderer) statusColor(s model.Status) *color.Color {
	if c, ok := r.statusColors[s]; ok {
		return c
	}
	return color.New(color.FgWhite)
}
