package spec

import (
	"strings"

	"github.com/apibridge/swag2postman/pmerrors"
)

// schemaRefPrefix is the only reference pointer form the resolver accepts:
// local component schema references.
const schemaRefPrefix = "#/components/schemas/"

// SchemaName extracts the component schema name from a local reference
// pointer. Returns false when the pointer is not of the form
// "#/components/schemas/<Name>".
func SchemaName(ref string) (string, bool) {
	name, ok := strings.CutPrefix(ref, schemaRefPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// ResolveRef resolves a local component schema reference against the
// document. A malformed pointer or a pointer naming a schema absent from
// components yields a *pmerrors.ReferenceError; the caller must handle
// the failure rather than proceed with an undefined schema.
func ResolveRef(doc *Document, ref string) (*Schema, error) {
	name, ok := SchemaName(ref)
	if !ok {
		return nil, &pmerrors.ReferenceError{
			Ref:     ref,
			Message: "unsupported reference pointer; only " + schemaRefPrefix + "<Name> is recognized",
		}
	}
	if doc == nil || doc.Components == nil {
		return nil, &pmerrors.ReferenceError{Ref: ref, Message: "document has no component schemas"}
	}
	schema, ok := doc.Components.Schemas[name]
	if !ok || schema == nil {
		return nil, &pmerrors.ReferenceError{Ref: ref, Message: "schema not found in components"}
	}
	return schema, nil
}
