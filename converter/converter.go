// Package converter transforms a loaded OpenAPI document into Postman
// output documents: one environment per server entry and a single
// collection covering every (path, method) operation.
package converter

import (
	"github.com/apibridge/swag2postman/pmerrors"
	"github.com/apibridge/swag2postman/postman"
	"github.com/apibridge/swag2postman/spec"
)

// Converter handles the OpenAPI to Postman transformation.
type Converter struct {
	// Words supplies placeholder words for generated string values and
	// query parameters. Defaults to a randomly seeded source; inject a
	// seeded source for deterministic output.
	Words WordSource
	// IDs supplies identifiers for generated documents.
	IDs postman.IDGenerator
	// FailOnMissingRef causes conversion to fail when a request body
	// references a component schema absent from the document. When false
	// the request is emitted without a body and a warning is recorded.
	FailOnMissingRef bool
	// FallbackName is used as the collection name when the document's
	// info object declares no title. It is humanized before use, so a
	// file base name like "petstore-api" becomes "Petstore Api".
	FallbackName string
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger spec.Logger
}

// New creates a new Converter instance with default settings.
func New() *Converter {
	return &Converter{
		Words:            DefaultWords(),
		IDs:              postman.NewID,
		FailOnMissingRef: true,
	}
}

// Result contains the generated Postman documents.
type Result struct {
	// Collection is the generated collection document.
	Collection *postman.Collection
	// Environments holds one environment per server entry, in server order.
	Environments []*postman.Environment
	// Warnings contains non-fatal issues encountered during generation,
	// such as skipped request bodies when FailOnMissingRef is disabled.
	Warnings []string
}

// Convert is a convenience function equivalent to New().Convert(doc).
func Convert(doc *spec.Document) (*Result, error) {
	return New().Convert(doc)
}

// Convert generates environments and a collection from the document.
// Environments are generated first, in server order; the collection's
// items appear in document path order with methods in canonical order
// within each path. Any error aborts the conversion.
func (c *Converter) Convert(doc *spec.Document) (*Result, error) {
	if doc == nil {
		return nil, &pmerrors.ConfigError{Option: "document", Message: "must not be nil"}
	}

	result := &Result{}
	for _, server := range doc.Servers {
		if server == nil {
			continue
		}
		env, err := c.buildEnvironment(server)
		if err != nil {
			return nil, err
		}
		result.Environments = append(result.Environments, env)
	}

	collection, warnings, err := c.buildCollection(doc)
	if err != nil {
		return nil, err
	}
	result.Collection = collection
	result.Warnings = warnings

	c.log().Debug("conversion complete",
		"requests", len(collection.Items),
		"environments", len(result.Environments),
		"warnings", len(warnings))
	return result, nil
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Converter) log() spec.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return spec.NopLogger{}
}

// words returns the configured word source, or the default when unset.
func (c *Converter) words() WordSource {
	if c.Words != nil {
		return c.Words
	}
	return DefaultWords()
}

// ids returns the configured ID generator, or the default when unset.
func (c *Converter) ids() postman.IDGenerator {
	if c.IDs != nil {
		return c.IDs
	}
	return postman.NewID
}
