package mcpserver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apibridge/swag2postman/spec"
)

// maxInlineSize bounds inline content accepted by tools (1MB). Larger
// documents must be passed by file path.
const maxInlineSize = 1 * 1024 * 1024

// specInput represents the two ways a spec can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve loads the spec from whichever input was provided.
func (s specInput) resolve() (*spec.LoadResult, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided, not both")
	case s.File != "":
		return spec.Load(s.File)
	case s.Content != "":
		if len(s.Content) > maxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead",
				len(s.Content), maxInlineSize)
		}
		return spec.New().LoadBytes([]byte(s.Content), "inline")
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}

// fallbackName derives a collection name fallback from a file input:
// "specs/petstore-api.yaml" becomes "petstore-api". Inline content has
// no name to derive from.
func (s specInput) fallbackName() string {
	if s.File == "" || s.File == spec.StdinPath {
		return ""
	}
	base := filepath.Base(s.File)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
