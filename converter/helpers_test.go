package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apibridge/swag2postman/spec"
)

func TestPathSegments(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"/pets/{petId}", []string{"pets", "{petId}"}},
		{"/pets", []string{"pets"}},
		{"/", nil},
		{"", nil},
		{"/a//b/", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathSegments(tt.path))
		})
	}
}

func TestPathVariables(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"/pets/{petId}", []string{"petId"}},
		{"/owners/{ownerId}/pets/{petId}", []string{"ownerId", "petId"}},
		{"/pets/{petId}/friends/{petId}", []string{"petId"}},
		{"/pets", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathVariables(tt.path))
		})
	}
}

func TestQueryParamScalarVsArray(t *testing.T) {
	c := testConverter()

	scalar := c.queryParam(&spec.Parameter{Name: "limit", In: spec.InQuery, Schema: &spec.Schema{Type: "integer"}})
	assert.Equal(t, "lorem", scalar.Value)

	array := c.queryParam(&spec.Parameter{Name: "tags", In: spec.InQuery, Schema: &spec.Schema{Type: "array"}})
	assert.Equal(t, `["lorem"]`, array.Value)

	untyped := c.queryParam(&spec.Parameter{Name: "q", In: spec.InQuery})
	assert.Equal(t, "lorem", untyped.Value, "parameter without a schema falls back to a single word")
}

func TestRequestName(t *testing.T) {
	assert.Equal(t, "List pets", requestName("/pets", &spec.Operation{Summary: "List pets"}))
	assert.Equal(t, "/pets", requestName("/pets", &spec.Operation{}))
	assert.Equal(t, "/pets", requestName("/pets", nil))
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"petstore-api", "Petstore Api"},
		{"user_service", "User Service"},
		{"openapi.v3", "Openapi V3"},
		{"simple", "Simple"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanize(tt.in))
		})
	}
}
