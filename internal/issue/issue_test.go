// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalog_UniqueAndOrdered(t *testing.T) {
	t.Parallel()

	if len(issues) == 0 {
		t.Fatal("catalog is empty")
	}
	for i, v := range issues {
		if v.Id() != Id(i+1) {
			t.Errorf("issues[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
		if Get(v.Id()) != v {
			t.Errorf("Get(%d) does not return the catalog entry", v.Id())
		}
		if strings.TrimSpace(string(v.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty markdown", v.Id())
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	if got := Get(PathNotFoundId); got == nil || got.Id() != PathNotFoundId {
		t.Fatalf("Get(PathNotFoundId) = %v", got)
	}
	if got := Get(Id(999)); got != nil {
		t.Errorf("Get(999) = %v, want nil", got)
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(InvalidPatternId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Invalid file pattern") {
		t.Errorf("Render() output missing title:\n%s", out)
	}
	if !strings.Contains(out, "doublestar") {
		t.Errorf("Render() output missing doc link:\n%s", out)
	}
}

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load configuration"},
			expected: "failed to load configuration",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "list directory", Resource: "/srv/lib"},
			expected: "failed to list directory: /srv/lib",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to load configuration: config.cue: syntax error at line 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Check file permissions").
		Wrap(root).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "• Check file permissions") {
		t.Errorf("Format(false) missing suggestion:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) should not include the error chain:\n%s", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "1. permission denied") {
		t.Errorf("Format(true) missing error chain:\n%s", long)
	}
	if !errors.Is(err, root) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if ae := NewErrorContext().WithResource("x").Build(); ae != nil {
		t.Errorf("Build() = %v, want nil without operation", ae)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() = %v, want nil", err)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
	ae := WrapWithContext(errors.New("boom"), "read directory", "/tmp")
	if ae.Error() != "failed to read directory: /tmp: boom" {
		t.Errorf("Error() = %q", ae.Error())
	}
}
