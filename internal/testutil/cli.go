package testutil

import (
	"encoding/json"
	"testing"
)

// CLIResult represents a parsed JSON envelope printed by the CLI.
type CLIResult struct {
	OK       bool            `json:"ok"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    *CLIError       `json:"error,omitempty"`
	Warnings []CLIWarning    `json:"warnings,omitempty"`
	Meta     *CLIMeta        `json:"meta,omitempty"`
	RawJSON  string          `json:"-"`
}

// CLIError represents a structured error from the CLI.
type CLIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CLIWarning represents a warning from the CLI.
type CLIWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// CLIMeta contains metadata from the response.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// ParseCLIResult parses CLI JSON output.
func ParseCLIResult(t *testing.T, output []byte) *CLIResult {
	t.Helper()
	result := &CLIResult{RawJSON: string(output)}
	if err := json.Unmarshal(output, result); err != nil {
		t.Fatalf("failed to parse JSON output: %v\nRaw: %s", err, output)
	}
	return result
}

// MustSucceed fails the test if the command reported an error.
func (r *CLIResult) MustSucceed(t *testing.T) {
	t.Helper()
	if !r.OK {
		t.Fatalf("expected success, got error: %+v\nRaw: %s", r.Error, r.RawJSON)
	}
}

// MustFail fails the test unless the command reported the given error code.
func (r *CLIResult) MustFail(t *testing.T, code string) {
	t.Helper()
	if r.OK {
		t.Fatalf("expected failure %s, got success\nRaw: %s", code, r.RawJSON)
	}
	if r.Error == nil || r.Error.Code != code {
		t.Fatalf("expected error code %s, got %+v", code, r.Error)
	}
}

// DecodeData decodes the data payload into v.
func (r *CLIResult) DecodeData(t *testing.T, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(r.Data, v); err != nil {
		t.Fatalf("failed to decode data: %v\nRaw: %s", err, r.RawJSON)
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}
