package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	if got := GetEnvString("TEST_STR", "default"); got != "hello" {
		t.Errorf("GetEnvString() = %q, want hello", got)
	}
	if got := GetEnvString("TEST_STR_UNSET", "default"); got != "default" {
		t.Errorf("GetEnvString() = %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := GetEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt() = %d, want 42", got)
	}

	t.Setenv("TEST_INT_BAD", "abc")
	if got := GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt() with bad value = %d, want 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"F", true, false},
		{"0", true, false},
		{"yes", false, false},
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := GetEnvBool("TEST_BOOL", tt.def); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	if got := GetEnvDuration("TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("GetEnvDuration() = %v, want 90s", got)
	}

	t.Setenv("TEST_DUR_BAD", "soon")
	if got := GetEnvDuration("TEST_DUR_BAD", time.Minute); got != time.Minute {
		t.Errorf("GetEnvDuration() with bad value = %v, want 1m", got)
	}
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", "a, b, ,c")
	got := GetEnvStringList("TEST_LIST", []string{"x"})
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("GetEnvStringList() mismatch (-want +got):\n%s", diff)
	}

	got = GetEnvStringList("TEST_LIST_UNSET", []string{"x"})
	if diff := cmp.Diff([]string{"x"}, got); diff != "" {
		t.Errorf("GetEnvStringList() default mismatch (-want +got):\n%s", diff)
	}
}
