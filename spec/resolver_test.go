package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apibridge/swag2postman/pmerrors"
)

func TestSchemaName(t *testing.T) {
	tests := []struct {
		ref  string
		name string
		ok   bool
	}{
		{"#/components/schemas/Pet", "Pet", true},
		{"#/components/schemas/NewUserRequest", "NewUserRequest", true},
		{"#/components/schemas/", "", false},
		{"#/components/schemas/Pet/properties/name", "", false},
		{"#/definitions/Pet", "", false},
		{"Pet", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			name, ok := SchemaName(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestResolveRef(t *testing.T) {
	pet := &Schema{Type: "object", Properties: map[string]*Schema{"name": {Type: "string"}}}
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{"Pet": pet}}}

	resolved, err := ResolveRef(doc, "#/components/schemas/Pet")
	require.NoError(t, err)
	assert.Same(t, pet, resolved)
}

func TestResolveRefNotFound(t *testing.T) {
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{}}}

	_, err := ResolveRef(doc, "#/components/schemas/Missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pmerrors.ErrReference))

	var refErr *pmerrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "#/components/schemas/Missing", refErr.Ref)
}

func TestResolveRefMalformedPointer(t *testing.T) {
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{"Pet": {}}}}

	_, err := ResolveRef(doc, "#/definitions/Pet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pmerrors.ErrReference))
	assert.Contains(t, err.Error(), "unsupported reference pointer")
}

func TestResolveRefNoComponents(t *testing.T) {
	_, err := ResolveRef(&Document{}, "#/components/schemas/Pet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pmerrors.ErrReference))
}
