// Package httputil provides HTTP method constants shared by the spec
// model and the converter.
package httputil

// HTTP method constants, lowercase as they appear as keys in OpenAPI
// path item objects.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// CanonicalMethodOrder is the fixed order in which operations within a
// path item are visited. Go maps do not preserve declaration order, so
// generation iterates methods in this order to keep output deterministic.
var CanonicalMethodOrder = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

// MediaTypeJSON is the only request media type the converter generates
// bodies for.
const MediaTypeJSON = "application/json"
