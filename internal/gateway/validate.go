package gateway

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Matches what the meeting form accepts, e.g. https://zoom.us/j/123456.
// Scheme is optional.
var meetingURLPattern = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Panics only on a malformed registration, which would be a programming
	// error caught by any test run.
	if err := v.RegisterValidation("meetingurl", func(fl validator.FieldLevel) bool {
		return meetingURLPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// validateInput runs struct-tag validation and folds failures into
// ErrValidation so callers can separate them from backend errors.
func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}
