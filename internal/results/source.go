// internal/results/source.go
package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mwiater/evalgrid/internal/logging"
)

// DefaultLocation is where the evaluation results are read from when none is configured.
const DefaultLocation = "result.json"

const (
	defaultFetchTimeout = 30 * time.Second
	maxDocumentBytes    = 256 << 20
)

// Source delivers the raw bytes of an evaluation document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Location() string
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	Path string
}

// Fetch reads the whole file.
func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.Path)
}

// Location returns the file path.
func (s FileSource) Location() string { return s.Path }

// HTTPSource GETs the document from a URL. Bodies larger than MaxBytes
// (default 256 MiB) are rejected.
type HTTPSource struct {
	URL      string
	Client   *http.Client
	MaxBytes int64
}

// Fetch performs the GET and returns the body of a 2xx response.
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = maxDocumentBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("document exceeds %s", formatBytes(limit))
	}
	return data, nil
}

// formatBytes renders whole MiB as "N MiB" and anything else in bytes.
func formatBytes(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return fmt.Sprintf("%d MiB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}

// Location returns the URL.
func (s HTTPSource) Location() string { return s.URL }

// NewSource picks an HTTPSource for http(s) locations and a FileSource otherwise.
func NewSource(location string) Source {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		trimmed = DefaultLocation
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return HTTPSource{URL: trimmed}
	}
	return FileSource{Path: trimmed}
}

// Fetch retrieves the raw document bytes, bounded by timeout. Failures are *LoadFailure.
func Fetch(ctx context.Context, src Source, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logging.LogEvent("[LOAD] Fetching evaluation results from %s", src.Location())
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, &LoadFailure{Location: src.Location(), Err: err}
	}
	return data, nil
}

// Decode parses a document and requires "results.results" to be present.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse evaluation results: %w", err)
	}
	if doc.Results == nil || doc.Results.Results == nil {
		return Document{}, errors.New(`document has no "results.results" array`)
	}
	return doc, nil
}

// Load fetches and decodes the document at location.
func Load(ctx context.Context, location string, timeout time.Duration) (Document, error) {
	src := NewSource(location)
	data, err := Fetch(ctx, src, timeout)
	if err != nil {
		return Document{}, err
	}
	doc, err := Decode(data)
	if err != nil {
		return Document{}, &LoadFailure{Location: src.Location(), Err: err}
	}
	logging.LogEvent("[LOAD] Decoded %d records from %s", len(doc.Results.Results), src.Location())
	return doc, nil
}
