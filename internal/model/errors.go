package model

import (
	stderrors "errors"

	"github.com/agilira/go-errors"
)

// Domain error codes. Business logic attaches these codes when it fails;
// the CLI dispatcher reads them back through errors.ErrorCoder to choose
// an exit code. No error crosses into the output layer unconverted.
const (
	// ErrCodeValidation marks user input that violates a business rule.
	// Maps to ExitValidationError (65).
	ErrCodeValidation = "TEMPLATE_CLI_VALIDATION_ERROR"

	// ErrCodeDomain marks a generic business-rule failure.
	// Maps to ExitGeneralError (1).
	ErrCodeDomain = "TEMPLATE_CLI_DOMAIN_ERROR"

	// ErrCodeConfig marks a configuration file that exists but is
	// malformed or fails schema validation. Maps to ExitConfigError (78).
	ErrCodeConfig = "TEMPLATE_CLI_CONFIG_ERROR"
)

// NewValidationError creates a validation-coded domain error.
func NewValidationError(message string) error {
	return errors.New(ErrCodeValidation, message)
}

// NewDomainError creates a generic business-rule error.
func NewDomainError(message string) error {
	return errors.New(ErrCodeDomain, message)
}

// NewConfigError creates a configuration-coded error.
func NewConfigError(message string) error {
	return errors.New(ErrCodeConfig, message)
}

// WrapConfigError wraps an underlying parse or validation failure as a
// configuration-coded error.
func WrapConfigError(err error, message string) error {
	return errors.Wrap(err, ErrCodeConfig, message)
}

// IsValidationError reports whether err carries the validation error code.
func IsValidationError(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsDomainError reports whether err carries any of the domain error codes.
// Validation and config errors are domain errors too; this predicate is the
// catch-all the dispatcher checks last.
func IsDomainError(err error) bool {
	return hasCode(err, ErrCodeDomain) || hasCode(err, ErrCodeValidation) || hasCode(err, ErrCodeConfig)
}

// IsConfigError reports whether err carries the config error code.
func IsConfigError(err error) bool {
	return hasCode(err, ErrCodeConfig)
}

// hasCode walks the error chain looking for an errors.ErrorCoder with the
// given code.
func hasCode(err error, code string) bool {
	var coder errors.ErrorCoder
	if stderrors.As(err, &coder) {
		return string(coder.ErrorCode()) == code
	}
	return false
}
