package gateway

import (
	"errors"
	"testing"
)

func TestEnvKeyStoreReadsEnvironment(t *testing.T) {
	t.Setenv("COURSE_KEY_TEST", "  from-env  ")
	keys := NewEnvKeyStore("COURSE_KEY_TEST")
	if !keys.HasKey() || keys.Key() != "from-env" {
		t.Fatalf("expected trimmed env key, got %q", keys.Key())
	}
}

func TestEnvKeyStoreOverride(t *testing.T) {
	keys := NewEnvKeyStore("COURSE_KEY_TEST_UNSET")
	if keys.HasKey() {
		t.Fatalf("expected no key without environment")
	}
	if err := keys.SetKey("   "); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
	if err := keys.SetKey(" user-key "); err != nil {
		t.Fatalf("set key: %v", err)
	}
	if !keys.HasKey() || keys.Key() != "user-key" {
		t.Fatalf("expected installed key, got %q", keys.Key())
	}
}
