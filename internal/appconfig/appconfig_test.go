// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

// TestLoad tests the Load function to ensure it correctly handles valid and
// invalid configurations. A valid file loads with defaults applied, while
// invalid JSON, an unknown analysis format, or a nonexistent file fail.
func TestLoad(t *testing.T) {
	validConfig := `{
        "input": "https://example.com/result.json",
        "title": "Nightly",
        "analysisOutput": "reports/analysis.yaml",
        "analysisFormat": "yaml"
    }`
	tmpfile, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.InputLocation() != "https://example.com/result.json" {
		t.Fatalf("unexpected input %q", cfg.InputLocation())
	}
	if cfg.ConfigPath != tmpfile.Name() {
		t.Fatalf("expected config path %q, got %q", tmpfile.Name(), cfg.ConfigPath)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Fatalf("expected default timeout of 30 seconds, got %d", cfg.TimeoutSeconds)
	}
	if cfg.FetchTimeout() != 30*time.Second {
		t.Fatalf("expected default fetch timeout of 30s, got %v", cfg.FetchTimeout())
	}

	invalidJSON := `{ "input": `
	tmpfile2, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile2.Name())
	if _, err := tmpfile2.Write([]byte(invalidJSON)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile2.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile2.Name()); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	badFormat := `{ "analysisFormat": "xml" }`
	tmpfile3, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile3.Name())
	if _, err := tmpfile3.Write([]byte(badFormat)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile3.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile3.Name()); err == nil {
		t.Fatal("Load() with unknown analysis format should have failed")
	}

	if _, err := Load("nonexistent.json"); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	if cfg.InputLocation() != DefaultInput {
		t.Fatalf("expected default input, got %q", cfg.InputLocation())
	}
	if cfg.HTMLOutputPath() != DefaultHTMLOutput {
		t.Fatalf("expected default html output, got %q", cfg.HTMLOutputPath())
	}
	if cfg.ListenAddr() != DefaultListen {
		t.Fatalf("expected default listen, got %q", cfg.ListenAddr())
	}
	if cfg.LogFilePath() != "evalgrid.log" {
		t.Fatalf("expected default log file, got %q", cfg.LogFilePath())
	}
	cfg.TimeoutSeconds = 5
	if cfg.FetchTimeout() != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.FetchTimeout())
	}
	cfg.TimeoutSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected negative timeout to be rejected")
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Config{Title: "Fallback", AnalysisOutput: "a.json"})
	out := buf.String()
	for _, want := range []string{"No config file loaded", "Title:           Fallback", "Analysis Format: json", "Markdown Output: (none)", "Listen:          127.0.0.1:8080"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q; got:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.json", &Config{Input: "x.json", Strict: true}, Config{})
	out = buf.String()
	for _, want := range []string{"Config file: config/config.json", "Input:           x.json", "Strict:          true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q; got:\n%s", want, out)
		}
	}
}
