package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("days", "must be non-negative, got -3")

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatal("expected error to be a *ValidationError")
	}
	if valErr.Field != "days" {
		t.Errorf("expected field 'days', got %q", valErr.Field)
	}
	want := "invalid days: must be non-negative, got -3"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestRuleNotFoundError(t *testing.T) {
	err := &RuleNotFoundError{Regime: "civil", TriggerEvent: "service of summons"}

	var rnf *RuleNotFoundError
	wrapped := fmt.Errorf("computing deadline: %w", err)
	if !errors.As(wrapped, &rnf) {
		t.Fatal("expected wrapped error to match *RuleNotFoundError")
	}
	if rnf.Regime != "civil" {
		t.Errorf("expected regime 'civil', got %q", rnf.Regime)
	}
}

func TestUserError_Unwrap(t *testing.T) {
	inner := ErrDependencyUnavailable
	err := NewUserError("holiday calendar unreachable", inner)

	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Error("expected UserError to unwrap to ErrDependencyUnavailable")
	}

	bare := NewUserError("standalone message", nil)
	if bare.Error() != "standalone message" {
		t.Errorf("unexpected message: %q", bare.Error())
	}
}
