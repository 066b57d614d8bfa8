// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"

	"github.com/invowk/jdesc/pkg/descriptor"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "render descriptor"},
			expected: "failed to render descriptor",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "render descriptor",
				Resource:  "Ljava/lang/String",
			},
			expected: "failed to render descriptor: Ljava/lang/String",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "./config.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load configuration: ./config.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := &ActionableError{
		Operation:   "size descriptor",
		Resource:    "(I)V",
		Suggestions: []string{"use 'jdesc method'"},
		Cause:       errors.Join(errors.New("outer"), cause),
	}

	plain := wrapped.Format(false)
	if !strings.Contains(plain, "\n  • use 'jdesc method'") {
		t.Errorf("Format(false) missing suggestion bullet: %q", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain: %q", plain)
	}

	verbose := wrapped.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "1. ") {
		t.Errorf("Format(true) should include the error chain: %q", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	if NewErrorContext().Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("check syntax").
		WithSuggestion("run 'jdesc config init'").
		Wrap(cause).
		Build()
	if ae.Operation != "load configuration" || ae.Resource != "config.cue" {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 2 || !ae.HasSuggestions() {
		t.Errorf("Suggestions = %v, want 2", ae.Suggestions)
	}
	if !errors.Is(ae, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapWithOperation(t *testing.T) {
	if WrapWithOperation(nil, "op") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	ae := WrapWithOperation(errors.New("x"), "read input")
	if ae.Operation != "read input" || ae.HasSuggestions() {
		t.Errorf("WrapWithOperation() = %+v", ae)
	}
}

func TestWrapDescriptorError(t *testing.T) {
	if WrapDescriptorError(nil, "op", "I") != nil {
		t.Error("WrapDescriptorError(nil) should return nil")
	}

	_, err := descriptor.Descriptor("L").Render()
	ae := WrapDescriptorError(err, "render descriptor", "L")
	if !ae.HasSuggestions() {
		t.Error("malformed descriptor errors should carry suggestions")
	}
	if !errors.Is(ae, descriptor.ErrMalformedDescriptor) {
		t.Error("wrapped error should still match ErrMalformedDescriptor")
	}
	if ae.Resource != "L" {
		t.Errorf("Resource = %q, want %q", ae.Resource, "L")
	}

	_, err = descriptor.Int.ComponentDescriptor()
	if ae := WrapDescriptorError(err, "get component", "I"); !ae.HasSuggestions() {
		t.Error("precondition errors should carry suggestions")
	}

	if ae := WrapDescriptorError(errors.New("io"), "read", "x"); ae.HasSuggestions() {
		t.Error("non-codec errors should not carry suggestions")
	}
}
