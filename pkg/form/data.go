package form

import (
	"mime/multipart"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/filter"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/request"
)

// SetData replaces every field value from data, keyed by HTML name or field
// key. Present values are stored as the original value and filtered into the
// current value; fields missing from data are reset to nil. Ignored fields
// keep their value.
func (f *Form) SetData(data map[string]any) {
	assigned := 0
	for _, field := range f.fields {
		if f.isIgnored(field.Key) {
			continue
		}
		if field.Key == f.csrfKey && f.csrfKey != "" {
			f.assignToken(data)
			continue
		}
		raw, ok := lookup(data, field)
		if !ok {
			field.Reset()
			continue
		}
		field.SetValue(raw)
		assigned++
	}
	f.logger.Debug("form data assigned",
		zap.String("form", f.Name),
		zap.Int("fields", len(f.fields)),
		zap.Int("assigned", assigned),
	)
}

func lookup(data map[string]any, field *fields.Field) (any, bool) {
	if raw, ok := data[field.Name]; ok {
		return raw, true
	}
	raw, ok := data[field.Key]
	return raw, ok
}

// SetRequest reads the form data from src. GET forms read the query string;
// every other method reads the posted values and uploaded files.
func (f *Form) SetRequest(src request.Source) {
	if src == nil {
		f.SetData(nil)
		return
	}
	if f.Method == http.MethodGet {
		f.SetData(f.collect(src.QueryValues(), nil))
		return
	}
	f.SetData(f.collect(src.PostValues(), src.FileValues()))
}

// SetHTTPRequest parses r and assigns its data.
func (f *Form) SetHTTPRequest(r *http.Request) error {
	src, err := request.FromHTTP(r, 0)
	if err != nil {
		return err
	}
	f.SetRequest(src)
	return nil
}

func (f *Form) collect(values url.Values, files map[string][]*multipart.FileHeader) map[string]any {
	data := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		name := field.Name
		if field.Kind == fields.KindFile {
			headers := files[name]
			switch {
			case len(headers) == 0:
			case field.IsMultiple():
				data[name] = headers
			default:
				data[name] = headers[0]
			}
			continue
		}
		submitted, ok := values[name]
		if !ok {
			continue
		}
		if field.IsMultiple() {
			data[name] = append([]string(nil), submitted...)
			continue
		}
		if len(submitted) > 0 {
			data[name] = submitted[0]
		} else {
			data[name] = ""
		}
	}
	return data
}

// Data returns field key to current (filtered) value.
func (f *Form) Data() map[string]any {
	out := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		out[field.Key] = field.Value
	}
	return out
}

// RawData returns the same post-filter values as Data, keyed by HTML name.
func (f *Form) RawData() map[string]any {
	out := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		out[field.Name] = field.Value
	}
	return out
}

// OriginalData returns the unfiltered values from the last assignment.
func (f *Form) OriginalData() map[string]any {
	out := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		out[field.Key] = field.OriginalValue
	}
	return out
}

// Values returns the current values as url.Values, suitable for re-encoding a
// submission.
func (f *Form) Values() url.Values {
	out := url.Values{}
	for _, field := range f.fields {
		switch field.Kind {
		case fields.KindFile, fields.KindSubmit, fields.KindButton:
			continue
		}
		if field.Value == nil {
			continue
		}
		for _, item := range toStrings(field.Value) {
			out.Add(field.Name, item)
		}
	}
	return out
}

func toStrings(value any) []string {
	if !filter.IsSlice(value) {
		return []string{html.Stringify(value)}
	}
	items := filter.ToSlice(value)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, html.Stringify(item))
	}
	return out
}
