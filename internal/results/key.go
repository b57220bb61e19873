// internal/results/key.go
package results

import "strings"

const (
	schemeSeparator = "://"
	pythonSuffix    = ".py:"
)

// TestCaseKey extracts the test case name from an assertion value of the form
// "<scheme>://<path>.py:<rest>". It reports false when the value has no scheme
// separator, no ".py:" marker, or the path between them is empty. Only the
// first "://" is a separator; later ones are part of the path.
func TestCaseKey(value string) (string, bool) {
	_, rest, found := strings.Cut(value, schemeSeparator)
	if !found {
		return "", false
	}
	path, _, found := strings.Cut(rest, pythonSuffix)
	if !found || path == "" {
		return "", false
	}
	return path, true
}

// recordKey resolves the test case key from componentResults[0] of a record.
func recordKey(r RawResult) (string, bool) {
	first, ok := firstComponent(r)
	if !ok || first.Assertion == nil || first.Assertion.Value == "" {
		return "", false
	}
	return TestCaseKey(first.Assertion.Value)
}

func firstComponent(r RawResult) (ComponentResult, bool) {
	if r.GradingResult == nil || len(r.GradingResult.ComponentResults) == 0 {
		return ComponentResult{}, false
	}
	return r.GradingResult.ComponentResults[0], true
}
