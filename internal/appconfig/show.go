package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintf(out, "  Input:           %s\n", cfg.InputLocation())
	fmt.Fprintf(out, "  HTML Output:     %s\n", cfg.HTMLOutputPath())
	fmt.Fprintf(out, "  Title:           %s\n", orNone(cfg.Title))
	fmt.Fprintf(out, "  Analysis Output: %s\n", orNone(cfg.AnalysisOutput))
	if cfg.AnalysisOutput != "" {
		format := cfg.AnalysisFormat
		if format == "" {
			format = "json"
		}
		fmt.Fprintf(out, "  Analysis Format: %s\n", format)
	}
	fmt.Fprintf(out, "  Markdown Output: %s\n", orNone(cfg.MarkdownOutput))
	fmt.Fprintf(out, "  Listen:          %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Fetch Timeout:   %s\n", cfg.FetchTimeout())
	fmt.Fprintf(out, "  Strict:          %v\n", cfg.Strict)
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
