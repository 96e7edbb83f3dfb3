// Package spec loads and models OpenAPI 3.x documents.
//
// The model covers the subset of the specification the converter consumes:
// servers, path items with their operations, operation parameters, JSON
// request bodies, and component schemas. No semantic validation is
// performed; a structurally valid but semantically broken document may
// produce undefined downstream behavior.
package spec

import (
	"sort"

	"github.com/apibridge/swag2postman/internal/httputil"
)

// Document is the in-memory representation of an OpenAPI 3.x document.
// It should be treated as immutable after loading.
type Document struct {
	OpenAPI    string               `json:"openapi,omitempty" yaml:"openapi,omitempty"`
	Info       *Info                `json:"info,omitempty" yaml:"info,omitempty"`
	Servers    []*Server            `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths,omitempty" yaml:"paths,omitempty"`
	Components *Components          `json:"components,omitempty" yaml:"components,omitempty"`

	// pathOrder records the order path keys appeared in the source.
	// Populated by the loader; empty for hand-built documents.
	pathOrder []string
}

// OrderedPaths returns the document's path keys in source order when the
// document was produced by the loader, and in sorted order otherwise.
// Generation iterates paths through this method so output is deterministic.
func (d *Document) OrderedPaths() []string {
	if len(d.pathOrder) > 0 {
		return d.pathOrder
	}
	keys := make([]string, 0, len(d.Paths))
	for k := range d.Paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetPathOrder records the source ordering of path keys. Intended for the
// loader and for tests that build documents by hand.
func (d *Document) SetPathOrder(order []string) {
	d.pathOrder = order
}

// Info holds the document's info object.
type Info struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Server is a single entry of the document's servers list.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem holds the per-method operations of a single path template.
type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Trace   *Operation `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// PathOperation pairs a lowercase HTTP method name with its operation.
type PathOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the path item's defined operations in canonical
// method order (get, put, post, delete, options, head, patch, trace).
func (p *PathItem) Operations() []PathOperation {
	var ops []PathOperation
	for _, method := range httputil.CanonicalMethodOrder {
		if op := p.operation(method); op != nil {
			ops = append(ops, PathOperation{Method: method, Operation: op})
		}
	}
	return ops
}

func (p *PathItem) operation(method string) *Operation {
	switch method {
	case httputil.MethodGet:
		return p.Get
	case httputil.MethodPut:
		return p.Put
	case httputil.MethodPost:
		return p.Post
	case httputil.MethodDelete:
		return p.Delete
	case httputil.MethodOptions:
		return p.Options
	case httputil.MethodHead:
		return p.Head
	case httputil.MethodPatch:
		return p.Patch
	case httputil.MethodTrace:
		return p.Trace
	default:
		return nil
	}
}

// Operation describes a single path/method pair.
type Operation struct {
	Summary     string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string       `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
}

// Parameter describes an operation parameter.
type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Parameter location constants.
const (
	InQuery  = "query"
	InPath   = "path"
	InHeader = "header"
	InCookie = "cookie"
)

// RequestBody describes an operation's request body.
type RequestBody struct {
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool                  `json:"required,omitempty" yaml:"required,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// JSONSchema returns the schema declared for the application/json media
// type, or nil when the body declares no JSON content.
func (rb *RequestBody) JSONSchema() *Schema {
	if rb == nil {
		return nil
	}
	mt := rb.Content[httputil.MediaTypeJSON]
	if mt == nil {
		return nil
	}
	return mt.Schema
}

// MediaType describes a single media type entry of a request body.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Components holds the document's reusable component schemas.
type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}
