package converter

import (
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apibridge/swag2postman/postman"
	"github.com/apibridge/swag2postman/spec"
)

// Path parameters like: /pets/{petId}/toys
var pathParamRegx = regexp.MustCompile(`\{([^}]+)}`)

// pathSegments splits a path template into its non-empty segments.
// Bracketed segments are kept verbatim: "/pets/{petId}" -> ["pets", "{petId}"].
func pathSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// pathVariables returns the distinct {name} segments of a path template
// in order of first appearance.
func pathVariables(path string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range pathParamRegx.FindAllStringSubmatch(path, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// queryParam builds the query entry for one query-located parameter.
// Array-typed parameters get a JSON-encoded one-element array of a
// placeholder word; anything else gets a single word.
func (c *Converter) queryParam(p *spec.Parameter) postman.QueryParam {
	value := c.words()()
	if p.Schema.Kind() == spec.KindArray {
		encoded, err := json.Marshal([]string{value})
		if err == nil {
			value = string(encoded)
		}
	}
	return postman.QueryParam{
		Key:         p.Name,
		Value:       value,
		Description: p.Description,
	}
}

// requestName names a collection item: the operation's summary when
// present, else the raw path string.
func requestName(path string, op *spec.Operation) string {
	if op != nil && op.Summary != "" {
		return op.Summary
	}
	return path
}

var titleCaser = cases.Title(language.English)

// humanize turns an identifier-like string into a display name:
// "petstore-api" -> "Petstore Api".
func humanize(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(s))
}
