package types

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct's validate tags and reports every failing
// field in one types.ErrValidation.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s failed %s", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}

// ParseMonth accepts YYYY-MM or YYYY-MM-DD and returns the first day of that
// month in UTC.
func ParseMonth(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: month %q must be YYYY-MM", ErrValidation, value)
}

// ParseOptionalMonth treats an empty string as no month filter.
func ParseOptionalMonth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	month, err := ParseMonth(value)
	if err != nil {
		return nil, err
	}
	return &month, nil
}
