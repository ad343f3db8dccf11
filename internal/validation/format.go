// Package validation formats errors for values outside a fixed set.
package validation

import (
	"fmt"
	"strings"
)

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// InvalidValueError reports that field holds value, which is not in valid.
// The result wraps base.
func InvalidValueError[T ~string](base error, field string, value T, valid []T) error {
	return fmt.Errorf("%w: %s %q must be one of %s", base, field, string(value), FormatValidValues(valid))
}
