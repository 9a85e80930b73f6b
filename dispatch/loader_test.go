package dispatch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coregx/strmatch"
)

// TestLoadRules_Valid loads a well-formed ruleset and dispatches through it.
func TestLoadRules_Valid(t *testing.T) {
	validYAML := `rules:
  - name: get-request
    pattern: '"GET " [path]'
    description: HTTP GET request line
  - name: put-request
    pattern: '"PUT " [path]'
  - name: anything
    pattern: '[_]'
`

	set, err := LoadRules([]byte(validYAML))
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	if set.Len() != 3 {
		t.Fatalf("expected 3 arms, got %d", set.Len())
	}
	if set.Arms()[0].Description != "HTTP GET request line" {
		t.Errorf("expected description on first arm, got %q", set.Arms()[0].Description)
	}

	res, ok := set.MatchString("PUT /upload")
	if !ok {
		t.Fatal("PUT line did not match")
	}
	if res.Name != "put-request" {
		t.Errorf("expected put-request, got %s", res.Name)
	}
}

// TestLoadRules_Invalid covers the load failure modes.
func TestLoadRules_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{"not yaml", "{{{", "failed to parse YAML"},
		{"no rules", "rules: []", "no rules found"},
		{"missing name", "rules:\n  - pattern: '\"a\"'", "missing name"},
		{"duplicate name", "rules:\n  - name: a\n    pattern: '\"x\"'\n  - name: a\n    pattern: '\"y\"'", "duplicate name"},
		{"bad pattern", "rules:\n  - name: broken\n    pattern: '[x] [y]'", `rule "broken"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules([]byte(tt.yaml))
			if err == nil {
				t.Fatal("LoadRules succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

// TestLoadRules_BadPatternUnwraps checks pattern failures expose CompileError.
func TestLoadRules_BadPatternUnwraps(t *testing.T) {
	_, err := LoadRules([]byte("rules:\n  - name: broken\n    pattern: '\"abc'"))
	var compileErr *strmatch.CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("error = %v, want wrapped *strmatch.CompileError", err)
	}
}

// TestLoadRulesFile round-trips a ruleset through disk.
func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "rules:\n  - name: only\n    pattern: '\"hi\" [_]'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadRulesFile(path)
	if err != nil {
		t.Fatalf("LoadRulesFile failed: %v", err)
	}
	if _, ok := set.MatchString("hi there"); !ok {
		t.Error("loaded rule did not match")
	}

	if _, err := LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRulesFile succeeded on missing file")
	}
}
