// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/definition"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/session"
)

// MustLoadDefinitions loads every definition file under dir.
func MustLoadDefinitions(t *testing.T, dir string) *definition.Store {
	t.Helper()

	store, err := definition.LoadFS(os.DirFS(dir))
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	return store
}

// MustNewForm instantiates the form id from store. Protected forms receive a
// fresh in-memory session.
func MustNewForm(t *testing.T, store *definition.Store, id string, opts ...form.Option) *form.Form {
	t.Helper()

	entry, ok := store.Entry(id)
	if !ok {
		t.Fatalf("form %q not found (have %v)", id, store.IDs())
	}
	f, err := entry.New(session.NewMemory(), opts...)
	if err != nil {
		t.Fatalf("new form %q: %v", id, err)
	}
	return f
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written, so callers can assert they match.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
