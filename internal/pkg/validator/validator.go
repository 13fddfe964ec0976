// Package validator wraps go-playground/validator with a process-wide
// instance, the custom tags used by blockgate inputs and a consistent error
// format.
//
// Custom tags:
//
//	cron  a standard five-field cron expression (robfig/cron parser)
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// ErrValidationFailed is the first error of the chain returned when a value
// violates its validation rules.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// errStringFormat renders one field violation, e.g.
// "'WebhookURL': value 'ftp://x' does not meet the requirements for the 'http_url' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("cron", validateCron); err != nil {
		panic(err)
	}
}

func validateCron(fl gvalidator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(url, "required,http_url").
func Var(value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		return formatError(err)
	}

	return nil
}
