// internal/report/generate.go
package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mwiater/evalgrid/internal/logging"
	"github.com/mwiater/evalgrid/internal/results"
	"github.com/mwiater/evalgrid/internal/schema"
	"github.com/mwiater/evalgrid/internal/util"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LoadOptions describes where the evaluation results come from.
type LoadOptions struct {
	Input   string
	Timeout time.Duration
	Strict  bool
}

// Options captures the inputs and outputs of a render run.
type Options struct {
	LoadOptions
	Title          string
	HTMLPath       string
	AnalysisPath   string
	AnalysisFormat string
	MarkdownPath   string
}

// Load fetches the document, validates it against the schema when Strict is
// set, and aggregates it. Retrieval and parse failures are *results.LoadFailure.
func Load(ctx context.Context, opts LoadOptions) (*results.Report, error) {
	src := results.NewSource(opts.Input)
	data, err := results.Fetch(ctx, src, opts.Timeout)
	if err != nil {
		return nil, err
	}

	if opts.Strict {
		if err := schema.ValidateDocument(data); err != nil {
			var verr *schema.ValidationError
			if errors.As(err, &verr) {
				return nil, err
			}
			return nil, &results.LoadFailure{Location: src.Location(), Err: err}
		}
	}

	doc, err := results.Decode(data)
	if err != nil {
		return nil, &results.LoadFailure{Location: src.Location(), Err: err}
	}
	return results.Aggregate(doc)
}

// Generate loads and aggregates the results, then writes every requested
// artifact. Each written path is reported on out.
func Generate(ctx context.Context, opts Options, out io.Writer) (*results.Report, error) {
	rep, err := Load(ctx, opts.LoadOptions)
	if err != nil {
		return nil, err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "Aggregated %d records into %d models x %d test cases (%d skipped)\n",
		rep.Records, len(rep.Models), len(rep.TestCases), rep.Skipped)

	if opts.AnalysisPath != "" {
		if err := WriteAnalysis(opts.AnalysisPath, rep, opts.AnalysisFormat); err != nil {
			return nil, err
		}
		logging.LogEvent("[RENDER] Analysis written to %s", opts.AnalysisPath)
		fmt.Fprintf(out, "Analysis written to %s\n", opts.AnalysisPath)
	}

	if opts.MarkdownPath != "" {
		var buf bytes.Buffer
		if err := RenderMarkdown(&buf, rep, opts.Title); err != nil {
			return nil, fmt.Errorf("failed generating Markdown report: %w", err)
		}
		if err := util.WriteFile(opts.MarkdownPath, buf.Bytes()); err != nil {
			return nil, err
		}
		logging.LogEvent("[RENDER] Markdown written to %s", opts.MarkdownPath)
		fmt.Fprintf(out, "Markdown written to %s\n", opts.MarkdownPath)
	}

	if opts.HTMLPath != "" {
		var buf bytes.Buffer
		if err := RenderHTML(&buf, rep, HTMLOptions{Title: opts.Title, GeneratedAt: time.Now()}); err != nil {
			return nil, fmt.Errorf("failed generating HTML report: %w", err)
		}
		if err := util.WriteFile(opts.HTMLPath, buf.Bytes()); err != nil {
			return nil, err
		}
		logging.LogEvent("[RENDER] Report written to %s", opts.HTMLPath)
		fmt.Fprintf(out, "Report written to %s\n", opts.HTMLPath)
	}

	return rep, nil
}
