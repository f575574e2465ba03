package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsCarryErr(t *testing.T) {
	err := ErrCarry.WithMsg("second %d is out of range", 61)
	if !IsCarryErr(err) {
		t.Fatal("expected carry error")
	}
	if !errors.Is(err, ErrCarry) {
		t.Fatal("expected errors.Is to match ErrCarry")
	}
	if IsCarryErr(ErrIllegalArgument.WithMsg("nope")) {
		t.Fatal("expected not a carry error")
	}
	if IsCarryErr(nil) {
		t.Fatal("nil is not a carry error")
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := ErrCarry.Wrap(cause)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrCarry) {
		t.Fatal("expected errors.Is to match ErrCarry")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to match the cause")
	}
	if ErrCarry.Wrap(nil) != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

func TestWrapf(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrapf(cause, "extra context %v", 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to match the cause")
	}
	if Wrapf(nil, "whatever") != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

func TestStackTrace(t *testing.T) {
	err := NewErrf("oops")
	if err.StackTrace() == "" {
		t.Fatal("expected a stacktrace")
	}
	t.Logf("stack: %v", err.StackTrace())
}

func TestErrorMessage(t *testing.T) {
	err := NewErrfCode("MY_CODE", "my message")
	if err.Code() != "MY_CODE" {
		t.Fatalf("unexpected code: %v", err.Code())
	}
	if err.Error() != "my message" {
		t.Fatalf("unexpected message: %v", err.Error())
	}

	wrapped := err.Wrap(fmt.Errorf("cause"))
	if wrapped.Error() != "my message, cause" {
		t.Fatalf("unexpected message: %v", wrapped.Error())
	}
}
