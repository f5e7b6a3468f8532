package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
)

var contactForm = form.Define("Contact",
	fields.Text("name"),
	fields.Email("email", fields.WithLabel("Email address")),
	fields.Checkbox("tags", fields.WithName("tags[]"), fields.WithChoices(fields.Pairs("a", "a", "b", "b")...)),
)

func TestMapErrorPayload(t *testing.T) {
	f := contactForm.New()
	payload := map[string][]string{
		"/body/name":         {"Name is required"},
		"body.owner.email":   {"Email invalid"},
		"$.body.tags[0]":     {"Tags must be unique"},
		"tags[]":             {"Pick one"},
		"non_field_errors":   {"Form level error"},
		"request/body/phone": {"Should fall back to form errors"},
		"":                   {"Unscoped form error"},
	}

	mapped := render.MapErrorPayload(f, payload)

	wantFields := map[string][]string{
		"name":  {"Name is required"},
		"email": {"Email invalid"},
		"tags":  {"Tags must be unique", "Pick one"},
	}
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(wantFields, mapped.Fields, sortStrings); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Form level error", "Should fall back to form errors", "Unscoped form error"}
	if diff := cmp.Diff(wantForm, mapped.Form, sortStrings); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_StableOrder(t *testing.T) {
	payload := map[string][]string{
		"extra.gamma": {"fourth"},
		"extra.alpha": {"first"},
		"extra.delta": {"third"},
		"extra.beta":  {"second"},
		"tags[]":      {"from tags[]"},
		"tags":        {"from tags"},
	}

	for i := 0; i < 20; i++ {
		mapped := render.MapErrorPayload(contactForm.New(), payload)
		if diff := cmp.Diff([]string{"first", "second", "third", "fourth"}, mapped.Form); diff != "" {
			t.Fatalf("form errors order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"from tags", "from tags[]"}, mapped.Fields["tags"]); diff != "" {
			t.Fatalf("tags errors order mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	f := contactForm.New()
	render.ApplyErrors(f, render.ErrorMapping{
		Fields: map[string][]string{"email": {"Email invalid"}, "missing": {"dropped"}},
		Form:   []string{"Try again"},
	})

	want := map[string]form.FieldErrors{
		"email": {Messages: []string{"Email invalid"}, Label: "Email address"},
		"form":  {Messages: []string{"Try again"}, Label: "Contact"},
	}
	if diff := cmp.Diff(want, f.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged errors mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_ValuesAndErrors(t *testing.T) {
	f := contactForm.New()
	f.SetData(map[string]any{"name": "Ada"})

	render.Apply(f, render.RenderOptions{
		Values: map[string]any{"email": " ada@example.com "},
		Errors: map[string][]string{"email": {"Taken"}},
	})

	if got := f.Value("name"); got != "Ada" {
		t.Fatalf("expected untouched name, got %v", got)
	}
	if got := f.Value("email"); got != "ada@example.com" {
		t.Fatalf("expected filtered email, got %v", got)
	}
	if diff := cmp.Diff([]string{"Taken"}, f.Errors["email"].Messages); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}
