package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidMode(t *testing.T) {
	err := InvalidMode("Sea")

	if !IsType(err, TypeInvalidMode) {
		t.Fatalf("expected INVALID_MODE type, got %s", err.Type)
	}
	want := `[INVALID_MODE] unrecognized shipping mode: "Sea"`
	if err.Error() != want {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Config("failed to save config", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestIsType(t *testing.T) {
	if IsType(fmt.Errorf("plain"), TypeInput) {
		t.Error("plain error should not match any type")
	}
	if !IsType(Input("bad weight"), TypeInput) {
		t.Error("Input error should match TypeInput")
	}
	if IsType(Input("bad weight"), TypeInvalidMode) {
		t.Error("Input error should not match TypeInvalidMode")
	}
}

func TestWithContext(t *testing.T) {
	err := Input("weight must be non-negative").WithContext("weight", "-1")

	if err.Context["weight"] != "-1" {
		t.Errorf("context not recorded: %v", err.Context)
	}
}
