// Package greeting implements the application's one piece of business
// logic: validating a name and formatting a greeting for it.
//
// The package is deliberately trivial. It exists to demonstrate where
// domain rules live relative to the CLI layer: validation happens here,
// and failures surface as coded domain errors that the dispatcher maps
// to exit codes.
package greeting

import (
	"strings"

	"github.com/praxis-dev/template-cli/internal/model"
)

// Greet formats a greeting for the given name.
//
// The name is trimmed of surrounding whitespace before formatting.
// Returns a validation error when the name is empty or whitespace-only.
// Pure function, no side effects.
func Greet(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", model.NewValidationError("name cannot be empty")
	}
	return "Hello, " + trimmed + "!", nil
}
