package converter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apibridge/swag2postman/internal/httputil"
	"github.com/apibridge/swag2postman/postman"
	"github.com/apibridge/swag2postman/spec"
)

// defaultCollectionName is used when neither the document's info title
// nor a fallback name is available.
const defaultCollectionName = "Generated API"

// buildCollection generates the collection document. Items appear in
// document path order, methods in canonical order within each path.
func (c *Converter) buildCollection(doc *spec.Document) (*postman.Collection, []string, error) {
	collection := &postman.Collection{
		Info: postman.CollectionInfo{
			PostmanID:   c.ids()(),
			Name:        c.collectionName(doc),
			Description: c.collectionDescription(doc),
			Schema:      postman.SchemaV210,
		},
		Items: []*postman.Item{},
	}

	var warnings []string
	for _, path := range doc.OrderedPaths() {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		for _, po := range item.Operations() {
			request, itemWarnings, err := c.buildItem(doc, path, po)
			if err != nil {
				return nil, nil, err
			}
			warnings = append(warnings, itemWarnings...)
			collection.Items = append(collection.Items, request)
		}
	}
	return collection, warnings, nil
}

// buildItem assembles the collection item for one (path, method) pair.
func (c *Converter) buildItem(doc *spec.Document, path string, po spec.PathOperation) (*postman.Item, []string, error) {
	op := po.Operation
	method := strings.ToUpper(po.Method)

	body, warnings, err := c.buildBody(doc, path, method, op)
	if err != nil {
		return nil, nil, err
	}

	var query []postman.QueryParam
	for _, p := range op.Parameters {
		if p == nil || p.In != spec.InQuery {
			continue
		}
		query = append(query, c.queryParam(p))
	}

	var variables []postman.Variable
	for _, name := range pathVariables(path) {
		variables = append(variables, postman.Variable{Key: name, Value: ""})
	}

	request := &postman.Request{
		Method: method,
		URL: &postman.URL{
			Raw:       "{{base_url}}" + path,
			Host:      []string{"{{base_url}}"},
			Path:      pathSegments(path),
			Query:     query,
			Variables: variables,
		},
		Description: op.Description,
	}
	if body != nil {
		request.Body = body
		request.Header = []postman.Header{{Key: "Content-Type", Value: httputil.MediaTypeJSON}}
	}

	return &postman.Item{Name: requestName(path, op), Request: request}, warnings, nil
}

// buildBody resolves the operation's JSON request body schema and runs
// fake-data generation over it. A reference to a missing component
// schema fails the conversion unless FailOnMissingRef is disabled, in
// which case the request is emitted body-less with a warning.
func (c *Converter) buildBody(doc *spec.Document, path, method string, op *spec.Operation) (*postman.Body, []string, error) {
	schema := op.RequestBody.JSONSchema()
	if schema == nil {
		return nil, nil, nil
	}

	target := schema
	schemaName := ""
	if schema.Ref != "" {
		resolved, err := spec.ResolveRef(doc, schema.Ref)
		if err != nil {
			if c.FailOnMissingRef {
				return nil, nil, err
			}
			warning := fmt.Sprintf("%s %s: %v; request emitted without a body", method, path, err)
			c.log().Warn("skipping request body", "method", method, "path", path, "ref", schema.Ref)
			return nil, []string{warning}, nil
		}
		target = resolved
		schemaName, _ = spec.SchemaName(schema.Ref)
	} else if len(schema.Properties) == 0 {
		// Inline schema with nothing to generate from.
		return nil, nil, nil
	}

	value, err := c.fakeObject(schemaName, target)
	if err != nil {
		return nil, nil, err
	}
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling generated body for %s %s: %w", method, path, err)
	}
	return postman.NewJSONBody(string(raw)), nil, nil
}

// collectionName picks the collection's display name: the document's
// info title, else the humanized fallback, else a fixed default.
func (c *Converter) collectionName(doc *spec.Document) string {
	if doc.Info != nil && doc.Info.Title != "" {
		return doc.Info.Title
	}
	if c.FallbackName != "" {
		return humanize(c.FallbackName)
	}
	return defaultCollectionName
}

func (c *Converter) collectionDescription(doc *spec.Document) string {
	if doc.Info != nil {
		return doc.Info.Description
	}
	return ""
}
