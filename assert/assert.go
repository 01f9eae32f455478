// A wrapper around *testing.T. I hate the if a != b { t.ErrorF(....) } pattern.
// Test files in this repository use it for table-free checks; the Expectify
// suites use github.com/karlseguin/expect instead.
package assert

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// a == b
func Equal[T comparable](t *testing.T, actual T, expected T) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected '%v' to equal '%v'", actual, expected)
		t.FailNow()
	}
}

// Two lists are equal (same length & same values in the same order)
func List[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	Equal(t, len(actuals), len(expecteds))

	for i, actual := range actuals {
		Equal(t, actual, expecteds[i])
	}
}

// A value is nil
func Nil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual != nil && !reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be nil", actual)
		t.FailNow()
	}
}

// A value is not nil
func NotNil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual == nil {
		t.Errorf("expected %v to be not nil", actual)
		t.FailNow()
	}
	switch v := reflect.ValueOf(actual); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			t.Errorf("expected %v to be not nil", actual)
			t.FailNow()
		}
	}
}

// a != b
func NotEqual[T comparable](t *testing.T, actual T, unexpected T) {
	t.Helper()
	if actual == unexpected {
		t.Errorf("expected '%v' to differ from '%v'", actual, unexpected)
		t.FailNow()
	}
}

// A value is true
func True(t *testing.T, actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
		t.FailNow()
	}
}

// A value is false
func False(t *testing.T, actual bool) {
	t.Helper()
	if actual {
		t.Error("expected false, got true")
		t.FailNow()
	}
}

// The string contains the given value
func StringContains(t *testing.T, actual string, expected string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Errorf("expected %s to contain %s", actual, expected)
		t.FailNow()
	}
}

// errors.Cause(actual) == expected
func Cause(t *testing.T, actual error, expected error) {
	t.Helper()
	if errors.Cause(actual) != expected {
		t.Errorf("expected '%v' to be caused by '%v'", actual, expected)
		t.FailNow()
	}
}
