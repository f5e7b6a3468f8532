package form

import (
	"go.uber.org/zap"
)

// IsValid runs every field validator in declaration order, then the CSRF
// check and form level validators. Errors is rebuilt on every call. When the
// form is valid and bound to an object the values are written back; a
// binding failure is returned as the error.
func (f *Form) IsValid() (bool, error) {
	f.Errors = map[string]FieldErrors{}

	for _, field := range f.fields {
		if f.isIgnored(field.Key) || field.Key == f.csrfKey {
			continue
		}
		if messages := field.Errors(); len(messages) > 0 {
			f.Errors[field.Key] = FieldErrors{Messages: messages, Label: field.LabelText()}
		}
	}

	var formMessages []string
	if f.session != nil && !f.validToken() {
		formMessages = append(formMessages, CSRFMessage)
	}
	for _, v := range f.validators {
		if v == nil {
			continue
		}
		formMessages = append(formMessages, v.ValidateForm(f)...)
	}
	if len(formMessages) > 0 {
		f.Errors[FormErrorKey] = FieldErrors{Messages: formMessages, Label: f.Name}
	}

	valid := len(f.Errors) == 0
	f.logger.Debug("form validated",
		zap.String("form", f.Name),
		zap.Bool("valid", valid),
		zap.Int("errors", len(f.Errors)),
	)
	if !valid {
		return false, nil
	}
	if f.bound != nil {
		if err := f.writeBack(); err != nil {
			return true, err
		}
	}
	return true, nil
}

// ErrorMessages flattens Errors into key to messages.
func (f *Form) ErrorMessages() map[string][]string {
	out := make(map[string][]string, len(f.Errors))
	for key, errs := range f.Errors {
		out[key] = append([]string(nil), errs.Messages...)
	}
	return out
}
