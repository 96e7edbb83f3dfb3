// Package pmerrors provides structured error types for swag2postman.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: input file or document parsing failures
//   - SchemaError: a schema property that fake-data generation cannot handle
//   - ReferenceError: $ref resolution failures
//   - HTTPError: failures talking to the Postman API
//   - ConfigError: invalid pipeline configuration
//
// # Usage with errors.Is
//
//	result, err := spec.Load("openapi.json")
//	if err != nil {
//	    if errors.Is(err, pmerrors.ErrParse) {
//	        // input file was missing or malformed
//	    }
//	}
package pmerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a schema property could not be handled.
	ErrSchema = errors.New("schema error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrHTTP indicates a failed Postman API call.
	ErrHTTP = errors.New("http error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to load or parse an input document.
// This includes missing files, unreadable sources, and JSON/YAML
// deserialization errors.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaError represents a schema property that fake-data generation
// cannot produce a value for, typically because the property declares
// no recognizable type.
type SchemaError struct {
	// Property is the property key that could not be handled
	Property string
	// SchemaName is the component schema the property belongs to, if known
	SchemaName string
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.SchemaName != "" {
		msg += " in " + e.SchemaName
	}
	if e.Property != "" {
		msg += fmt.Sprintf(": property %q", e.Property)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as SchemaError has no underlying cause.
func (e *SchemaError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ReferenceError represents a failure to resolve a $ref pointer.
// This includes malformed pointers and references to component schemas
// that do not exist in the document.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ReferenceError has no underlying cause.
func (e *ReferenceError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// HTTPError represents a failed call against the Postman API.
// Any non-2xx response is reported as an HTTPError; there is no retry
// or backoff, the error propagates to the caller unhandled.
type HTTPError struct {
	// Method is the HTTP method of the failed request
	Method string
	// URL is the request URL
	URL string
	// StatusCode is the response status code (0 if the request never completed)
	StatusCode int
	// Body is a snippet of the response body, if any
	Body string
	// Cause is the underlying transport error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *HTTPError) Error() string {
	msg := "http error"
	if e.Method != "" && e.URL != "" {
		msg += fmt.Sprintf(": %s %s", e.Method, e.URL)
	}
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTP
}

// ConfigError represents an invalid configuration or input.
// This includes missing required fields and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ConfigError has no underlying cause.
func (e *ConfigError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
