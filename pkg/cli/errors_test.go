package cli

import (
	"errors"
	"testing"

	"mercator-hq/sieve/pkg/config"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("records.source", "missing required field")

	expected := "config error in records.source: missing required field"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestCommandError(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := NewCommandError("run", underlyingErr)

	expected := "command run failed: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with CommandError.Unwrap()")
	}
}

func TestConfigErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = "xml"
	cfg.Evaluation.MaxDepth = -1

	errs := ConfigErrors(config.Validate(cfg))
	if len(errs) != 2 {
		t.Fatalf("expected 2 config errors, got %d", len(errs))
	}
	fields := map[string]bool{errs[0].Field: true, errs[1].Field: true}
	if !fields["output.format"] || !fields["evaluation.max_depth"] {
		t.Errorf("unexpected fields %v", fields)
	}

	if ConfigErrors(errors.New("other")) != nil {
		t.Error("non-validation errors should yield nil")
	}
}
