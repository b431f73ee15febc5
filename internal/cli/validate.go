package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/credvet/credvet/internal/model"
	"github.com/credvet/credvet/internal/pipeline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	outJSON    string
	outMD      string
	timeout    time.Duration
	noCache    bool
	noFooter   bool
	noColor    bool
	aiEnabled  bool
	aiProvider string
	aiModel    string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <case.yaml>",
	Short: "Validate a single case file and generate a report",
	Long: `Validate runs the full cross-validation over one case:
- Extract text and metadata from the submitted documents
- Check claimed personal details against every document
- Check claimed academic details against every document
- Check each document for the structural elements its type requires
- Compare documents against each other for name and date consistency

Example:
  credvet validate case.yaml
  credvet validate case.yaml --json report.json --md report.md
  credvet validate case.yaml --ai --ai-provider openai --ai-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	// Output flags
	validateCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	validateCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	validateCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	validateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored terminal output")

	// Processing flags
	validateCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall validation timeout")
	validateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction cache (force fresh extraction)")

	// AI flags
	validateCmd.Flags().BoolVar(&aiEnabled, "ai", false, "enable AI-assisted assessment")
	validateCmd.Flags().StringVar(&aiProvider, "ai-provider", "openai", "AI provider (openai)")
	validateCmd.Flags().StringVar(&aiModel, "ai-model", "gpt-4o-mini", "AI model name")
}

func runValidate(cmd *cobra.Command, args []string) error {
	casePath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Validating: %s\n", casePath)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if aiEnabled {
		cfg.AI.Provider = aiProvider
		cfg.AI.Model = aiModel
		if err := resolveAPIKey(cfg); err != nil {
			return err
		}
	}

	// Create pipeline
	p := pipeline.New(cfg)

	c, err := model.LoadCase(casePath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Extracting %d document(s)...\n", len(c.Documents))
	}

	result, err := p.Run(ctx, c)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Overall status: %s\n", result.Report.Overall)
		fmt.Fprintf(os.Stderr, "✓ Issues found: %d\n", len(result.Report.AllIssues()))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderResult(result, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles configuration from defaults and shared flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Extraction.CacheEnabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Output.Color = !noColor

	if noColor {
		color.NoColor = true
	}

	if cfg.Extraction.CacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}
		cfg.Extraction.CacheDir = filepath.Join(home, ".credvet", "cache")
	}

	return cfg, nil
}

// resolveAPIKey fills in the provider API key from the environment
func resolveAPIKey(cfg *model.Config) error {
	switch cfg.AI.Provider {
	case "openai":
		cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.AI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.AI.BaseURL = baseURL
		}
	case "fallback":
		// No key required
	default:
		return fmt.Errorf("unknown AI provider: %s", cfg.AI.Provider)
	}
	return nil
}
