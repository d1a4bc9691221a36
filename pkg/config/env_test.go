package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	if got := GetEnvString("TEST_STR", "default"); got != "value" {
		t.Errorf("GetEnvString() = %q, want value", got)
	}
	if got := GetEnvString("TEST_STR_UNSET", "default"); got != "default" {
		t.Errorf("GetEnvString() = %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")
	if got := GetEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt() = %d, want 42", got)
	}
	if got := GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt() = %d, want fallback 7", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	t.Setenv("TEST_DUR_BAD", "soon")
	if got := GetEnvDuration("TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("GetEnvDuration() = %v, want 90s", got)
	}
	if got := GetEnvDuration("TEST_DUR_BAD", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration() = %v, want fallback 1s", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "false")
	t.Setenv("TEST_BOOL_BAD", "maybe")
	if GetEnvBool("TEST_BOOL", true) {
		t.Error("GetEnvBool() = true, want false")
	}
	if !GetEnvBool("TEST_BOOL_BAD", true) {
		t.Error("GetEnvBool() = false, want fallback true")
	}
}

func TestGetEnvStringSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", "https://a.example, https://b.example ,")
	got := GetEnvStringSlice("TEST_SLICE", nil)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("GetEnvStringSlice() = %v", got)
	}
}

func TestRequireEnv(t *testing.T) {
	t.Setenv("TEST_REQ", "secret")
	if got, err := RequireEnv("TEST_REQ"); err != nil || got != "secret" {
		t.Errorf("RequireEnv() = %q, %v", got, err)
	}
	if _, err := RequireEnv("TEST_REQ_UNSET"); err == nil {
		t.Error("RequireEnv() expected error for unset variable")
	}
}

func TestValidateDurations(t *testing.T) {
	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("ValidatePositiveDuration(0) expected error")
	}
	if err := ValidatePositiveDuration(time.Second); err != nil {
		t.Errorf("ValidatePositiveDuration(1s) unexpected error: %v", err)
	}
	if err := ValidateDurationRange(time.Minute, time.Second, time.Hour); err != nil {
		t.Errorf("ValidateDurationRange() unexpected error: %v", err)
	}
	if err := ValidateDurationRange(time.Hour, time.Second, time.Minute); err == nil {
		t.Error("ValidateDurationRange() expected error above max")
	}
}
