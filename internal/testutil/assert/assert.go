package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal asserts that the two inputs are identical according to
// reflect.DeepEqual.
func Equal[T any](t *testing.T, expected, actual T) bool {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("expected: %#v, actual: %#v", expected, actual)
		return false
	}

	return true
}

// False asserts that the input is false.
func False(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, false, actual)
}

// True asserts that the input is true.
func True(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, true, actual)
}

// Zero asserts that the input is equal to T's zero value according to
// reflect.DeepEqual.
func Zero[T any](t *testing.T, actual T) bool {
	t.Helper()

	var zero T
	return Equal(t, zero, actual)
}

// NoError asserts that err is nil.
func NoError(t *testing.T, err error) bool {
	t.Helper()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return false
	}

	return true
}

// ErrorAs asserts that err matches T according to errors.As, and returns the
// matched value.
func ErrorAs[T error](t *testing.T, err error) (T, bool) {
	t.Helper()

	var target T
	if !errors.As(err, &target) {
		t.Errorf("expected error of type %T, actual: %#v", target, err)
		return target, false
	}

	return target, true
}

// Panics asserts that f panics.
func Panics(t *testing.T, f func()) (ok bool) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		} else {
			ok = true
		}
	}()

	f()
	return false
}
