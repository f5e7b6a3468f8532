package html_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/html"
)

func TestAttributes_RenderSortsAndSuppresses(t *testing.T) {
	attrs := html.Attributes{
		"type":      "text",
		"name":      "username",
		"required":  true,
		"disabled":  false,
		"value":     nil,
		"class":     "",
		"maxlength": 12,
	}

	got := attrs.Render()
	want := ` maxlength="12" name="username" required="required" type="text"`
	if got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
	if flat := attrs.Flatten(); flat != strings.TrimPrefix(want, " ") {
		t.Fatalf("flatten mismatch: %q", flat)
	}
}

func TestAttributes_EmptyRendersNothing(t *testing.T) {
	if got := (html.Attributes{}).Render(); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
	if got := (html.Attributes{"value": nil}).Render(); got != "" {
		t.Fatalf("expected nil-only attributes to render empty, got %q", got)
	}
}

func TestAttributes_EscapesValues(t *testing.T) {
	got := html.Attributes{"placeholder": `say "hi" <now>`}.Flatten()
	want := `placeholder="say &#34;hi&#34; &lt;now&gt;"`
	if got != want {
		t.Fatalf("escape mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestAttributes_RoundTrip(t *testing.T) {
	cases := []html.Attributes{
		{"name": "test", "type": "radio", "value": 1, "checked": true},
		{"action": "/", "enctype": "multipart/form-data", "method": "post", "name": "Upload"},
		{"data-note": `a "quoted" & <odd> value`},
		{"skip": nil, "keep": "x"},
	}

	for _, attrs := range cases {
		rendered := attrs.Render()

		keys := keysInOrder(t, rendered)
		for i := 1; i < len(keys); i++ {
			if keys[i-1] > keys[i] {
				t.Fatalf("keys not sorted in %q", rendered)
			}
		}

		parsed, err := html.Parse(rendered)
		if err != nil {
			t.Fatalf("parse %q: %v", rendered, err)
		}

		want := html.Attributes{}
		for key, value := range attrs {
			if value == nil {
				continue
			}
			if value == true {
				want[key] = key
				continue
			}
			want[key] = html.Stringify(value)
		}
		if diff := cmp.Diff(want, parsed); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestParse_RejectsMalformedInput(t *testing.T) {
	if _, err := html.Parse(`name="unterminated`); err == nil {
		t.Fatalf("expected error for unterminated value")
	}
	if _, err := html.Parse(`novalue`); err == nil {
		t.Fatalf("expected error for missing value")
	}
}

func TestStringify(t *testing.T) {
	day := time.Date(2013, 9, 12, 0, 0, 0, 0, time.UTC)
	cases := map[string]struct {
		in   any
		want string
	}{
		"nil":      {nil, ""},
		"int":      {1, "1"},
		"int64":    {int64(42), "42"},
		"float":    {1.50, "1.5"},
		"bool":     {true, "true"},
		"date":     {day, "2013-09-12"},
		"datetime": {day.Add(90 * time.Minute), "2013-09-12 01:30:00"},
		"string":   {"x", "x"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := html.Stringify(tc.in); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func keysInOrder(t *testing.T, rendered string) []string {
	t.Helper()
	var keys []string
	for _, part := range strings.Split(strings.TrimSpace(rendered), `" `) {
		if idx := strings.Index(part, `="`); idx > 0 {
			keys = append(keys, part[:idx])
		}
	}
	return keys
}
