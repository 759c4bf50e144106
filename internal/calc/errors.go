// Package calc holds what the calculator packages share.
package calc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request the calculators refuse to evaluate.
// Handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")

// Invalid wraps ErrInvalidInput with a reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
