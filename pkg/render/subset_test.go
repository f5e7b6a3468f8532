package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/session"
)

func keysOf(list []*fields.Field) []string {
	out := make([]string, 0, len(list))
	for _, field := range list {
		out = append(out, field.Key)
	}
	return out
}

func TestSelectFields(t *testing.T) {
	f := contactForm.New()

	all := render.SelectFields(f, render.FieldSubset{})
	if diff := cmp.Diff([]string{"name", "email", "tags"}, keysOf(all)); diff != "" {
		t.Fatalf("empty subset mismatch (-want +got):\n%s", diff)
	}

	picked := render.SelectFields(f, render.ParseSubset("Name", "checkbox"))
	if diff := cmp.Diff([]string{"name", "tags"}, keysOf(picked)); diff != "" {
		t.Fatalf("subset mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectFields_KeepsCSRFToken(t *testing.T) {
	f := contactForm.New(form.WithSession(session.NewMemory()))
	picked := render.SelectFields(f, render.ParseSubset("email", ""))
	if diff := cmp.Diff([]string{"email", "Contact_csrf_token"}, keysOf(picked)); diff != "" {
		t.Fatalf("subset mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSubset(t *testing.T) {
	got := render.ParseSubset("a, b;a", "")
	if diff := cmp.Diff([]string{"a", "b"}, got.Keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got.Kinds != nil {
		t.Fatalf("expected nil kinds, got %v", got.Kinds)
	}
}
