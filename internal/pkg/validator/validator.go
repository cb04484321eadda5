// Package validator exposes declarative struct validation on top of
// go-playground/validator. Fields are checked against their `validate` tags
// and failures surface as a single joined error rooted at ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed roots every validation failure, so callers can branch
// with errors.Is regardless of how many fields were rejected.
var ErrValidationFailed = errors.New("struct validation failed")

// validate is the shared library instance, configured once at package load.
var validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// fieldErrFormat renders one rejected field, e.g.
// "'Address': value '' does not meet the requirements for the 'required' validation".
const fieldErrFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// describeFailures converts the library's error into the joined form rooted at
// ErrValidationFailed. Errors that are not field validation failures pass
// through unchanged.
func describeFailures(err error) error {
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fieldErr := range fieldErrs {
		errs = append(errs, fmt.Errorf(fieldErrFormat,
			fieldErr.Field(),
			fieldErr.Value(),
			fieldErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags. It returns nil when every
// field passes, and otherwise an error that satisfies
// errors.Is(err, ErrValidationFailed) and describes each rejected field.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return describeFailures(err)
	}

	return nil
}
