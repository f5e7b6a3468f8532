package tui_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/renderers/tui"
	"github.com/goliatone/go-form/pkg/validate"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	passwords    []string
	infoMessages []string
	selects      []tui.SelectConfig
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int
	passPos      int
	err          error
}

func (s *stubDriver) Input(_ context.Context, _ tui.InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ tui.InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg tui.SelectConfig) ([]int, error) {
	s.selects = append(s.selects, cfg)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ tui.TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

var signup = form.Define("Signup",
	fields.Text("username", fields.Required(), fields.WithValidators(validate.Length(3, -1))),
	fields.Password("password", fields.Required()),
	fields.Select("plan", fields.WithOptions(fields.Values("free", "pro"))),
	fields.Checkbox("tags", fields.WithChoices(fields.Pairs("News", "news", "Offers", "offers")...)),
	fields.Checkbox("terms", fields.WithChoices(fields.Choice{Label: "Accept terms", Value: "yes"})),
	fields.Textarea("bio"),
	fields.Hidden("source", fields.WithValue("cli")),
	fields.Submit("save"),
)

func TestRender_JSON(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"ab", "ada"},
		passwords: []string{"secret"},
		selectIdx: []int{1},
		multiIdx:  [][]int{{0, 1}},
		confirm:   []bool{true},
		textAreas: []string{"hello"},
	}
	r := tui.New(tui.WithPromptDriver(driver))

	out, err := r.Render(context.Background(), signup.New(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `{
  "bio": "hello",
  "password": "secret",
  "plan": "pro",
  "source": "cli",
  "tags": [
    "news",
    "offers"
  ],
  "terms": "yes",
  "username": "ada"
}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"username: Value must be at least 3 characters"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"free", "pro"}, driver.selects[0].Options); diff != "" {
		t.Fatalf("select options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"News", "Offers"}, driver.selects[1].Options); diff != "" {
		t.Fatalf("checkbox options mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FormURLEncoded(t *testing.T) {
	search := form.Define("Search",
		fields.Text("q"),
		fields.Radio("sort", fields.WithChoices(fields.Pairs("Newest", "new", "Oldest", "old")...)),
		fields.Checkbox("exact"),
	)
	driver := &stubDriver{
		inputs:    []string{" go "},
		selectIdx: []int{1},
		confirm:   []bool{true},
	}
	r := tui.New(tui.WithPromptDriver(driver), tui.WithOutputFormat(tui.OutputFormatFormURLEncoded))
	if r.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}

	out, err := r.Render(context.Background(), search.New(), render.RenderOptions{
		Values: map[string]any{"sort": "old"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "exact=on&q=go&sort=old" {
		t.Fatalf("unexpected output %q", got)
	}
	if got := driver.selects[0].DefaultIndex; got != 1 {
		t.Fatalf("expected current value preselected, got index %d", got)
	}
}

func TestRender_PrettyWithTransformer(t *testing.T) {
	greeting := form.Define("Greeting", fields.Text("name"))
	driver := &stubDriver{inputs: []string{"Ada"}}
	r := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithOutputFormat(tui.OutputFormatPrettyText),
		tui.WithTheme(tui.Theme{InfoPrefix: "> "}),
		tui.WithSubmitTransformer(func(values map[string]any) (map[string]any, error) {
			values["greeting"] = "hello " + values["name"].(string)
			return values, nil
		}),
	)

	out, err := r.Render(context.Background(), greeting.New(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "> greeting: hello Ada\n> name: Ada\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRender_InvalidSubmission(t *testing.T) {
	driver := &stubDriver{inputs: []string{"ada"}}
	r := tui.New(tui.WithPromptDriver(driver))

	_, err := r.Render(context.Background(), signup.New(), render.RenderOptions{
		Subset: render.FieldSubset{Keys: []string{"username"}},
	})
	if !errors.Is(err, tui.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(strings.Join(driver.infoMessages, "\n"), "password: Value is required") {
		t.Fatalf("expected password message, got %v", driver.infoMessages)
	}
}

func TestRender_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"a", "b"}}
	r := tui.New(tui.WithPromptDriver(driver), tui.WithMaxAttempts(2))

	_, err := r.Render(context.Background(), signup.New(), render.RenderOptions{})
	if !errors.Is(err, tui.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if driver.inputPos != 2 {
		t.Fatalf("expected two attempts, got %d", driver.inputPos)
	}
}

func TestRender_Aborted(t *testing.T) {
	r := tui.New(tui.WithPromptDriver(&stubDriver{err: tui.ErrAborted}))
	_, err := r.Render(context.Background(), signup.New(), render.RenderOptions{})
	if !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSurveyDriver_InfoAndCancelledPrompts(t *testing.T) {
	var out strings.Builder
	driver := tui.NewSurveyDriver(&out)

	if err := driver.Info(context.Background(), "hello"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if out.String() != "hello\n" {
		t.Fatalf("unexpected info output %q", out.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.Password(ctx, tui.InputConfig{Message: "password", Default: "ignored"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected password prompt to honour cancellation, got %v", err)
	}
	if _, err := driver.Input(ctx, tui.InputConfig{Message: "name"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected input prompt to honour cancellation, got %v", err)
	}
}
