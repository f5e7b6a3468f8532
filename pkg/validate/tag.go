package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagValidate is shared by every Tag validator; validator.Validate caches
// parsed tags and is safe for concurrent use.
var tagValidate = validator.New()

// Tag validates the value against a go-playground/validator tag expression,
// for example "email", "url" or "min=3,max=20". Empty values pass unless the
// tag itself contains "required".
func Tag(tag string, message ...string) Validator {
	tag = strings.TrimSpace(tag)
	return Func(func(value any, _ Field) Result {
		if IsEmpty(value) && !strings.Contains(tag, "required") {
			return Pass()
		}
		err := tagValidate.Var(value, tag)
		if err == nil {
			return Pass()
		}
		if len(message) > 0 && message[0] != "" {
			return Fail(message[0])
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return Fail(describeTag(fieldErrs[0]))
		}
		return Failf("Value is invalid: %v", err)
	})
}

// RegisterTag adds a custom tag usable from Tag.
func RegisterTag(tag string, fn validator.Func) error {
	if err := tagValidate.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("validate: register tag %q: %w", tag, err)
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return DefaultRequiredMessage
	case "email":
		return "Value must be a valid email address"
	case "url":
		return "Value must be a valid URL"
	case "min":
		return fmt.Sprintf("Value must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Value must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Value must be one of %s", fe.Param())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("Value failed %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("Value failed %s", fe.Tag())
}
