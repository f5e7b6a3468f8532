package validate_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/validate"
)

type stubField struct{ name string }

func (s stubField) FieldName() string { return s.name }
func (s stubField) LabelText() string { return s.name }

func TestRun_CollectsAllFailures(t *testing.T) {
	results := validate.Run("", stubField{"username"},
		validate.Required(),
		validate.Func(func(any, validate.Field) validate.Result { return validate.Fail("second") }),
		validate.Func(func(any, validate.Field) validate.Result { return validate.Pass() }),
	)

	if len(results) != 3 {
		t.Fatalf("expected every validator to run, got %d results", len(results))
	}
	want := []string{"Value is required", "second"}
	if diff := cmp.Diff(want, validate.Messages(results)); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomMessagesAreVerbatim(t *testing.T) {
	cases := map[string]struct {
		validator validate.Validator
		value     any
		want      string
	}{
		"required": {validate.Required("100% needed"), "", "100% needed"},
		"length":   {validate.Length(5, -1, "100% of %d chars"), "abc", "100% of %d chars"},
		"regex":    {validate.Regex(`^\d+$`, "digits %s only"), "abc", "digits %s only"},
		"date":     {validate.Date(time.DateOnly, "bad %v date"), "nope", "bad %v date"},
		"range":    {validate.Range(1, 2, "%d out of range"), 5, "%d out of range"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := tc.validator.Validate(tc.value, stubField{"field"})
			if result.Passed {
				t.Fatalf("expected failure")
			}
			if result.Message != tc.want {
				t.Fatalf("message = %q, want %q", result.Message, tc.want)
			}
		})
	}

	if got := validate.Failf("%d of %d", 1, 2).Message; got != "1 of 2" {
		t.Fatalf("Failf message = %q", got)
	}
}

func TestRequired(t *testing.T) {
	required := validate.Required()
	cases := map[string]struct {
		value any
		pass  bool
	}{
		"nil":         {nil, false},
		"empty":       {"", false},
		"empty slice": {[]string{}, false},
		"false":       {false, false},
		"zero time":   {time.Time{}, false},
		"value":       {"simon", true},
		"zero int":    {0, true},
		"slice":       {[]any{"1"}, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := required.Validate(tc.value, stubField{"x"}).Passed; got != tc.pass {
				t.Fatalf("want pass=%v, got %v", tc.pass, got)
			}
		})
	}

	custom := validate.Required("Fill me in")
	if msg := custom.Validate(nil, stubField{"x"}).Message; msg != "Fill me in" {
		t.Fatalf("unexpected custom message %q", msg)
	}
}

func TestLengthRegexRange(t *testing.T) {
	field := stubField{"x"}

	if !validate.Length(2, 4).Validate("abc", field).Passed {
		t.Fatalf("expected length to pass")
	}
	if got := validate.Length(2, 4).Validate("abcdef", field).Message; got != "Value must be between 2 and 4 characters" {
		t.Fatalf("unexpected length message %q", got)
	}
	if got := validate.Length(8, -1).Validate("short", field).Message; got != "Value must be at least 8 characters" {
		t.Fatalf("unexpected length message %q", got)
	}
	if !validate.Length(2, 4).Validate("", field).Passed {
		t.Fatalf("empty values should be left to Required")
	}

	if !validate.Regex(`^[a-z]+$`).Validate("abc", field).Passed {
		t.Fatalf("expected regex to pass")
	}
	if validate.Regex(`^[a-z]+$`, "letters only").Validate("ab1", field).Message != "letters only" {
		t.Fatalf("expected custom regex message")
	}

	if !validate.Range(1, 10).Validate("5", field).Passed {
		t.Fatalf("expected numeric string in range")
	}
	if validate.Range(1, 10).Validate(11, field).Passed {
		t.Fatalf("expected out of range failure")
	}
	if validate.Range(1, 10).Validate("abc", field).Passed {
		t.Fatalf("expected non numeric failure")
	}
}

func TestDate(t *testing.T) {
	field := stubField{"dob"}
	date := validate.Date("")

	if !date.Validate(time.Now(), field).Passed {
		t.Fatalf("time values should pass")
	}
	if !date.Validate("2013-09-12", field).Passed {
		t.Fatalf("well formed strings should pass")
	}
	result := date.Validate("12/09/2013", field)
	if result.Passed {
		t.Fatalf("expected malformed date to fail")
	}
	if result.Message != "12/09/2013 does not match format 2006-01-02" {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestChoice(t *testing.T) {
	choice := validate.Choice(1, 2, 3)
	field := stubField{"x"}
	if !choice.Validate("2", field).Passed {
		t.Fatalf("stringified values should match")
	}
	if !choice.Validate([]any{"1", 3}, field).Passed {
		t.Fatalf("slice members should match")
	}
	if got := choice.Validate([]string{"1", "9"}, field).Message; got != "9 is not a valid choice" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTag(t *testing.T) {
	field := stubField{"email"}
	email := validate.Tag("email")

	if !email.Validate("simon@example.com", field).Passed {
		t.Fatalf("expected valid email to pass")
	}
	if got := email.Validate("nope", field).Message; got != "Value must be a valid email address" {
		t.Fatalf("unexpected message %q", got)
	}
	if !email.Validate("", field).Passed {
		t.Fatalf("empty values should pass unless required")
	}
	if validate.Tag("required,email").Validate("", field).Passed {
		t.Fatalf("required tag should reject empty values")
	}
	if got := validate.Tag("min=3").Validate("ab", field).Message; got != "Value must be at least 3" {
		t.Fatalf("unexpected min message %q", got)
	}
}

func TestRegisterTag(t *testing.T) {
	err := validate.RegisterTag("is_simon", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == "simon"
	})
	if err != nil {
		t.Fatalf("register tag: %v", err)
	}
	if !validate.Tag("is_simon").Validate("simon", stubField{"x"}).Passed {
		t.Fatalf("custom tag should pass")
	}
	if got := validate.Tag("is_simon").Validate("bob", stubField{"x"}).Message; got != "Value failed is_simon" {
		t.Fatalf("unexpected message %q", got)
	}
}
