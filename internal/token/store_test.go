package token

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if got := store.Token(); got != "" {
		t.Errorf("Token() before set = %q, want empty", got)
	}

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if got := store.Token(); got != "abc123" {
		t.Errorf("Token() = %q, want abc123", got)
	}

	// Token must survive a new store instance over the same path.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if got := reopened.Token(); got != "abc123" {
		t.Errorf("Token() after reopen = %q, want abc123", got)
	}
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Token(); got != "" {
		t.Errorf("Token() after clear = %q, want empty", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("token file should be removed, stat err = %v", err)
	}

	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
}

func TestFileStore_Validation(t *testing.T) {
	if _, err := NewFileStore("  "); err == nil {
		t.Error("NewFileStore() with blank path should fail")
	}

	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := store.SetToken(""); err == nil {
		t.Error("SetToken(\"\") should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if got := store.Token(); got != "" {
		t.Errorf("Token() = %q, want empty", got)
	}
	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if got := store.Token(); got != "tok" {
		t.Errorf("Token() = %q, want tok", got)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Token(); got != "" {
		t.Errorf("Token() after clear = %q, want empty", got)
	}
}
