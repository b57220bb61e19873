// internal/report/analysis.go
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwiater/evalgrid/internal/results"
	"github.com/mwiater/evalgrid/internal/util"
	"go.yaml.in/yaml/v3"
)

// Analysis output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MarshalAnalysis encodes the report model as indented JSON or YAML.
func MarshalAnalysis(rep *results.Report, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("unable to marshal analysis JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal analysis YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported analysis format %q (want json or yaml)", format)
	}
}

// WriteAnalysis writes the report model to path, creating parent directories.
func WriteAnalysis(path string, rep *results.Report, format string) error {
	data, err := MarshalAnalysis(rep, format)
	if err != nil {
		return err
	}
	return util.WriteFile(path, data)
}
