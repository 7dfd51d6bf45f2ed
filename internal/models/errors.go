package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInvalidWhitelistPattern ErrorType = iota
	ErrMissingField
	ErrAttributeNotFound
	ErrDecode
	ErrInvalidConfig
	ErrFileOp
	ErrSigning
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInvalidWhitelistPattern:
		return "InvalidWhitelistPattern"
	case ErrMissingField:
		return "MissingField"
	case ErrAttributeNotFound:
		return "AttributeNotFound"
	case ErrDecode:
		return "Decode"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrFileOp:
		return "FileOp"
	case ErrSigning:
		return "Signing"
	default:
		return "Unknown"
	}
}

// ConfigError represents an error while loading or handling a configuration.
// Subject names the offending item: a package spec, a field path or a file.
type ConfigError struct {
	Type    ErrorType
	Subject string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Subject, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError reports a required key absent from an input mapping.
func NewMissingFieldError(field string) error {
	return &ConfigError{
		Type:    ErrMissingField,
		Subject: field,
		Err:     fmt.Errorf("required field %q is missing", field),
	}
}

// IsErrorType reports whether any ConfigError in err's chain has type t.
func IsErrorType(err error, t ErrorType) bool {
	var cfgErr *ConfigError
	for err != nil {
		if !errors.As(err, &cfgErr) {
			return false
		}
		if cfgErr.Type == t {
			return true
		}
		err = cfgErr.Err
	}
	return false
}
