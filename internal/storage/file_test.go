package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Set("greeting", "habari"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	got, ok := reopened.Get("greeting")
	if !ok || got != "habari" {
		t.Fatalf("expected persisted value, got %q (present=%v)", got, ok)
	}
}

func TestFileRemoveAbsentKeyIsNoOp(t *testing.T) {
	store, err := NewFile(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	store.Remove("missing")

	if _, ok := store.Get("missing"); ok {
		t.Fatal("unexpected value for removed key")
	}
}

func TestFileRejectsCorruptContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if _, err := NewFile(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
