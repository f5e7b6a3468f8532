// Package tui renders a form as a terminal session: every field becomes a
// prompt, answers go through the field filters and validators, and the
// accepted submission is serialized as JSON, urlencoded or plain text.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/filter"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/render"
)

// Name is the registry name of the renderer.
const Name = "tui"

// Renderer implements render.Renderer for terminal sessions.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	maxAttempts       int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{outputFormat: OutputFormatJSON}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

func (r *Renderer) Name() string { return Name }

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every selected field, assigns the answers to f and
// validates it. Fields outside the subset keep their current value.
func (r *Renderer) Render(ctx context.Context, f *form.Form, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	render.Apply(f, opts)

	data := make(map[string]any)
	for _, field := range render.SelectFields(f, opts.Subset) {
		if !promptable(f, field) {
			continue
		}
		answer, err := r.promptField(ctx, field)
		if err != nil {
			return nil, err
		}
		data[field.Name] = answer
	}
	for _, field := range f.Fields() {
		if _, asked := data[field.Name]; asked || field.Value == nil {
			continue
		}
		if field.Kind == fields.KindSubmit || field.Kind == fields.KindButton {
			continue
		}
		data[field.Name] = field.Value
	}

	f.SetData(data)
	valid, err := f.IsValid()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if !valid {
		messages := f.ErrorMessages()
		keys := sortedKeys(messages)
		for _, key := range keys {
			for _, msg := range messages[key] {
				r.info(ctx, r.theme.ErrorPrefix+f.Errors[key].Label+": "+msg)
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(keys, ", "))
	}

	values := payload(f)
	if r.submitTransformer != nil {
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

func (r *Renderer) promptField(ctx context.Context, field *fields.Field) (any, error) {
	label := field.LabelText()
	for attempt := 1; ; attempt++ {
		answer, err := r.ask(ctx, field, label, field.Attrs.String("title"))
		if err != nil {
			return nil, err
		}

		probe := field.Clone()
		probe.SetValue(answer)
		messages := probe.Errors()
		if len(messages) == 0 {
			return answer, nil
		}
		for _, msg := range messages {
			r.info(ctx, r.theme.ErrorPrefix+label+": "+msg)
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return nil, fmt.Errorf("%w: %s: %s", ErrInvalid, field.Key, strings.Join(messages, "; "))
		}
	}
}

func (r *Renderer) ask(ctx context.Context, field *fields.Field, label, help string) (any, error) {
	current := html.Stringify(field.Value)

	switch field.Kind {
	case fields.KindPassword:
		return r.driver.Password(ctx, InputConfig{Message: label, Help: help})
	case fields.KindTextarea:
		return r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current, Help: help})
	case fields.KindSelect:
		values, labels := flattenOptions(field)
		return r.choose(ctx, field, label, help, values, labels)
	case fields.KindRadio:
		if len(field.Choices) == 0 {
			return r.confirm(ctx, field, label, help)
		}
		values, labels := flattenChoices(field)
		return r.choose(ctx, field, label, help, values, labels)
	case fields.KindCheckbox:
		if len(field.Choices) > 1 {
			values, labels := flattenChoices(field)
			return r.choose(ctx, field, label, help, values, labels)
		}
		return r.confirm(ctx, field, label, help)
	default:
		return r.driver.Input(ctx, InputConfig{Message: label, Default: current, Help: help})
	}
}

// choose asks a single or multi select question and answers with the
// stringified option values.
func (r *Renderer) choose(ctx context.Context, field *fields.Field, label, help string, values, labels []string) (any, error) {
	selected := make(map[string]struct{})
	for _, item := range filter.ToSlice(field.Value) {
		selected[html.Stringify(item)] = struct{}{}
	}

	cfg := SelectConfig{Message: label, Options: labels, Help: help}
	for i, value := range values {
		if _, ok := selected[value]; ok {
			cfg.Defaults = append(cfg.Defaults, i)
		}
	}

	if field.IsMultiple() || (field.Kind == fields.KindCheckbox && len(values) > 1) {
		indices, err := r.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(values) {
				out = append(out, values[idx])
			}
		}
		return out, nil
	}

	if len(cfg.Defaults) > 0 {
		cfg.DefaultIndex = cfg.Defaults[0]
	}
	idx, err := r.driver.Select(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(values) {
		return "", nil
	}
	return values[idx], nil
}

// confirm handles a single checkbox or radio: yes submits its value, no
// submits nothing.
func (r *Renderer) confirm(ctx context.Context, field *fields.Field, label, help string) (any, error) {
	value := "on"
	if len(field.Choices) == 1 {
		value = html.Stringify(field.Choices[0].Value)
		if field.Choices[0].Label != "" {
			label = field.Choices[0].Label
		}
	} else if current := html.Stringify(field.Value); current != "" {
		value = current
	}

	yes, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: label,
		Default: !filter.IsSlice(field.Value) && html.Stringify(field.Value) == value,
		Help:    help,
	})
	if err != nil {
		return nil, err
	}
	if !yes {
		return "", nil
	}
	return value, nil
}

func (r *Renderer) info(ctx context.Context, msg string) {
	_ = r.driver.Info(ctx, msg)
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for key, value := range values {
			if value == nil {
				continue
			}
			for _, item := range filter.ToSlice(value) {
				encoded.Add(key, html.Stringify(item))
			}
		}
		return []byte(encoded.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, key := range sortedKeys(values) {
			parts := make([]string, 0, 1)
			for _, item := range filter.ToSlice(values[key]) {
				parts = append(parts, html.Stringify(item))
			}
			b.WriteString(r.theme.InfoPrefix + key + ": " + strings.Join(parts, ", ") + "\n")
		}
		return []byte(b.String()), nil
	default:
		out, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return out, nil
	}
}

func promptable(f *form.Form, field *fields.Field) bool {
	if field.Key == f.CSRFKey() {
		return false
	}
	switch field.Kind {
	case fields.KindHidden, fields.KindSubmit, fields.KindButton, fields.KindFile, fields.KindUnknown:
		return false
	default:
		return true
	}
}

// payload returns the submission keyed by field key, without controls,
// uploads or the CSRF token.
func payload(f *form.Form) map[string]any {
	out := make(map[string]any)
	for _, field := range f.Fields() {
		if field.Key == f.CSRFKey() {
			continue
		}
		if !promptable(f, field) && field.Kind != fields.KindHidden {
			continue
		}
		out[field.Key] = field.Value
	}
	return out
}

func flattenOptions(field *fields.Field) ([]string, []string) {
	var values, labels []string
	for _, group := range field.Options {
		for _, opt := range group.Options {
			values = append(values, html.Stringify(opt.Value))
			label := opt.Label
			if group.Label != "" {
				label = group.Label + " / " + label
			}
			labels = append(labels, label)
		}
	}
	return values, labels
}

func flattenChoices(field *fields.Field) ([]string, []string) {
	values := make([]string, 0, len(field.Choices))
	labels := make([]string, 0, len(field.Choices))
	for _, choice := range field.Choices {
		value := html.Stringify(choice.Value)
		values = append(values, value)
		if choice.Label != "" {
			labels = append(labels, choice.Label)
		} else {
			labels = append(labels, value)
		}
	}
	return values, labels
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
