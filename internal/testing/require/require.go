// Package require is a small testify-style assertion layer over *testing.T,
// matching the shape of an internal/testing/require package referenced
// throughout wazevo's own arm64 backend tests (reg_test.go,
// lower_instr_operands_test.go) without pulling in an external assertion
// module.
package require

import (
	"fmt"
	"reflect"
	"testing"
)

// True fails the test unless v is true.
func True(t *testing.T, v bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !v {
		t.Fatalf("expected true%s", formatExtra(msgAndArgs))
	}
}

// False fails the test unless v is false.
func False(t *testing.T, v bool, msgAndArgs ...interface{}) {
	t.Helper()
	if v {
		t.Fatalf("expected false%s", formatExtra(msgAndArgs))
	}
}

// Equal fails the test unless exp and actual are deeply equal.
func Equal(t *testing.T, exp, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, actual) {
		t.Fatalf("expected %#v, got %#v%s", exp, actual, formatExtra(msgAndArgs))
	}
}

// NotEqual fails the test if exp and actual are deeply equal.
func NotEqual(t *testing.T, exp, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if reflect.DeepEqual(exp, actual) {
		t.Fatalf("expected values to differ, both were %#v%s", exp, formatExtra(msgAndArgs))
	}
}

// NoError fails the test if err is non-nil.
func NoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected no error, got %v%s", err, formatExtra(msgAndArgs))
	}
}

// Error fails the test if err is nil.
func Error(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error, got nil%s", formatExtra(msgAndArgs))
	}
}

// ErrorIs fails the test unless errors.Is(err, target) holds. Implemented
// locally to avoid importing errors just for one call site per caller.
func ErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	for e := err; e != nil; e = unwrap(e) {
		if e == target {
			return
		}
	}
	t.Fatalf("expected error chain %v to contain %v%s", err, target, formatExtra(msgAndArgs))
}

func unwrap(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}

func formatExtra(msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return ""
	}
	if len(msgAndArgs) > 1 {
		return ": " + fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return ": " + format
}
