package pmerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ParseError{
		Path:    "openapi.json",
		Message: "invalid JSON",
		Cause:   cause,
	}

	assert.Equal(t, "parse error in openapi.json: invalid JSON: unexpected end of JSON input", err.Error())
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrSchema))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestParseErrorMinimal(t *testing.T) {
	err := &ParseError{}
	assert.Equal(t, "parse error", err.Error())
}

func TestSchemaError(t *testing.T) {
	err := &SchemaError{
		Property:   "age",
		SchemaName: "User",
		Message:    "missing type",
	}

	assert.Equal(t, `schema error in User: property "age": missing type`, err.Error())
	assert.True(t, errors.Is(err, ErrSchema))
	assert.Nil(t, errors.Unwrap(err))
}

func TestSchemaErrorAs(t *testing.T) {
	var err error = fmt.Errorf("generating body: %w", &SchemaError{Property: "name"})

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "name", schemaErr.Property)
}

func TestReferenceError(t *testing.T) {
	err := &ReferenceError{
		Ref:     "#/components/schemas/Missing",
		Message: "schema not found in components",
	}

	assert.Equal(t, "reference error: #/components/schemas/Missing: schema not found in components", err.Error())
	assert.True(t, errors.Is(err, ErrReference))
}

func TestHTTPError(t *testing.T) {
	err := &HTTPError{
		Method:     "POST",
		URL:        "https://api.getpostman.com/collections",
		StatusCode: 401,
		Body:       `{"error":"unauthorized"}`,
	}

	assert.Equal(t, `http error: POST https://api.getpostman.com/collections: status 401: {"error":"unauthorized"}`, err.Error())
	assert.True(t, errors.Is(err, ErrHTTP))
}

func TestHTTPErrorTransportCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &HTTPError{Method: "GET", URL: "https://api.getpostman.com/environments", Cause: cause}

	assert.True(t, errors.Is(err, ErrHTTP))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Option:  "inputPath",
		Message: "must not be empty",
	}

	assert.Equal(t, "configuration error for inputPath: must not be empty", err.Error())
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestConfigErrorValue(t *testing.T) {
	err := &ConfigError{Option: "seed", Value: -1, Message: "must be non-negative"}
	assert.Equal(t, "configuration error for seed (value: -1): must be non-negative", err.Error())
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrParse, ErrSchema, ErrReference, ErrHTTP, ErrConfig}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
