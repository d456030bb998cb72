package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	scanTimeout  time.Duration
	scanUA       string
	scanMaxBytes int64
	noCache      bool
	noFooter     bool
	insecureTLS  bool
	scanJSON     string
	scanMD       string
)

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Check the technical writing on a web page",
	Long: `Scan fetches a web page, extracts its visible prose, and checks every
sentence against the five style rules.

The fetcher honors robots.txt, rate-limits per domain, and caches fetched
pages.

Example:
  stecheck scan https://example.com/maintenance-manual
  stecheck scan https://example.com --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanJSON, "json", "", "output JSON report path (optional)")
	scanCmd.Flags().StringVar(&scanMD, "md", "", "output Markdown report path (optional)")

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&scanUA, "ua", "", "HTTP User-Agent override")
	scanCmd.Flags().Int64Var(&scanMaxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable page cache (force fresh fetch)")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	scanCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")

	registerLLMFlags(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.HTTP.Timeout = scanTimeout
	cfg.HTTP.MaxBodyBytes = scanMaxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	if scanUA != "" {
		cfg.HTTP.UserAgent = scanUA
	}
	cfg.Cache.Enabled = !noCache
	cfg.Output.IncludeFooter = !noFooter

	if err := configureLLM(cfg); err != nil {
		return err
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", scanTimeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	report, err := p.ScanURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Checked %d sentences\n", report.Sentences)
		fmt.Fprintf(os.Stderr, "✓ Found %d violations\n", len(report.Violations))
		fmt.Fprintf(os.Stderr, "✓ Compliance index: %d/100\n", report.Score.Index)
		fmt.Fprintln(os.Stderr)
	}

	return p.RenderReport(report, scanJSON, scanMD, verbose)
}
