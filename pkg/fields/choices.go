package fields

import (
	"sort"

	"github.com/goliatone/go-form/pkg/html"
)

// Choice is one (display, value) pair of a radio or checkbox field. An empty
// Label falls back to the field label.
type Choice struct {
	Label string
	Value any
}

// Pairs builds choices from alternating display/value arguments:
// Pairs("Red", "red", "Blue", "blue"). A trailing odd argument is ignored.
func Pairs(displayValue ...any) []Choice {
	out := make([]Choice, 0, len(displayValue)/2)
	for i := 0; i+1 < len(displayValue); i += 2 {
		out = append(out, Choice{Label: html.Stringify(displayValue[i]), Value: displayValue[i+1]})
	}
	return out
}

// SelectOption is one <option> of a select field.
type SelectOption struct {
	Value any
	Label string
}

// OptionGroup is a run of options. Groups with an empty Label render their
// options directly; labelled groups render as <optgroup>.
type OptionGroup struct {
	Label   string
	Options []SelectOption
}

// Values builds an ungrouped option list where each scalar is both the value
// and the display text.
func Values(values ...any) OptionGroup {
	opts := make([]SelectOption, 0, len(values))
	for _, v := range values {
		opts = append(opts, SelectOption{Value: v, Label: html.Stringify(v)})
	}
	return OptionGroup{Options: opts}
}

// Options builds an ungrouped option list from explicit (value, display)
// pairs.
func Options(opts ...SelectOption) OptionGroup {
	return OptionGroup{Options: append([]SelectOption(nil), opts...)}
}

// OptionMap builds an ungrouped option list from a display to value mapping.
// Go maps are unordered, so options are sorted by display text.
func OptionMap(displayToValue map[string]any) OptionGroup {
	labels := make([]string, 0, len(displayToValue))
	for label := range displayToValue {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	opts := make([]SelectOption, 0, len(labels))
	for _, label := range labels {
		opts = append(opts, SelectOption{Value: displayToValue[label], Label: label})
	}
	return OptionGroup{Options: opts}
}

// Group labels an option list so it renders as an <optgroup>.
func Group(label string, group OptionGroup) OptionGroup {
	group.Label = label
	return group
}

// ChoicesToOptions converts radio style pairs into a select option group.
func ChoicesToOptions(choices []Choice) OptionGroup {
	opts := make([]SelectOption, 0, len(choices))
	for _, c := range choices {
		label := c.Label
		if label == "" {
			label = html.Stringify(c.Value)
		}
		opts = append(opts, SelectOption{Value: c.Value, Label: label})
	}
	return OptionGroup{Options: opts}
}

func cloneGroups(groups []OptionGroup) []OptionGroup {
	if groups == nil {
		return nil
	}
	out := make([]OptionGroup, len(groups))
	for i, g := range groups {
		out[i] = OptionGroup{Label: g.Label, Options: append([]SelectOption(nil), g.Options...)}
	}
	return out
}
