package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/apibridge/swag2postman/pmerrors"
)

// StdinPath is the special input path used to indicate reading from stdin.
const StdinPath = "-"

// defaultMaxFileSize is the maximum input size accepted by default (10MB).
const defaultMaxFileSize int64 = 10 * 1024 * 1024

// SourceFormat represents the format of the source specification.
type SourceFormat string

const (
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
)

// Loader handles OpenAPI specification loading.
type Loader struct {
	// MaxFileSize is the maximum input size in bytes (0 means 10MB default).
	MaxFileSize int64
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Loader instance with default settings.
func New() *Loader {
	return &Loader{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// LoadResult contains the loaded document and metadata about its source.
type LoadResult struct {
	// SourcePath is the input source path the document was read from.
	SourcePath string
	// SourceFormat is the detected format of the source (JSON or YAML).
	SourceFormat SourceFormat
	// Document is the typed document. Treat as read-only after loading.
	Document *Document
	// SourceSize is the size of the source data in bytes.
	SourceSize int64
	// LoadTime is the time taken to read and parse the source.
	LoadTime time.Duration
	// Stats contains statistical information about the document.
	Stats DocumentStats
}

// Load is a convenience function equivalent to New().Load(path).
func Load(path string) (*LoadResult, error) {
	return New().Load(path)
}

// Load reads and parses a specification from a file path, or from stdin
// when path is "-". Missing or unreadable files and malformed documents
// produce a *pmerrors.ParseError.
func (l *Loader) Load(path string) (*LoadResult, error) {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	if path == StdinPath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &pmerrors.ParseError{Path: path, Message: "reading input", Cause: err}
	}

	result, err := l.LoadBytes(data, path)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// LoadReader reads and parses a specification from r. The sourceName is
// used in errors and in the result's SourcePath.
func (l *Loader) LoadReader(r io.Reader, sourceName string) (*LoadResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &pmerrors.ParseError{Path: sourceName, Message: "reading input", Cause: err}
	}
	result, err := l.LoadBytes(data, sourceName)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// LoadBytes parses a specification from an in-memory byte slice.
func (l *Loader) LoadBytes(data []byte, sourceName string) (*LoadResult, error) {
	maxSize := l.MaxFileSize
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}
	if int64(len(data)) > maxSize {
		return nil, &pmerrors.ParseError{
			Path:    sourceName,
			Message: fmt.Sprintf("input exceeds maximum size of %d bytes", maxSize),
		}
	}

	format := detectFormat(sourceName, data)
	l.log().Debug("loading specification", "source", sourceName, "format", format, "bytes", len(data))

	doc := &Document{}
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, &pmerrors.ParseError{Path: sourceName, Message: "invalid JSON", Cause: err}
		}
		doc.pathOrder = jsonPathOrder(data)
	default:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, &pmerrors.ParseError{Path: sourceName, Message: "invalid YAML", Cause: err}
		}
		doc.pathOrder = yamlPathOrder(data)
	}

	// Unmarshaling "null" or empty input into a struct succeeds without
	// touching any field; reject such non-documents here instead of
	// letting an empty document flow into generation.
	if doc.OpenAPI == "" && doc.Info == nil && doc.Servers == nil && doc.Paths == nil && doc.Components == nil {
		return nil, &pmerrors.ParseError{Path: sourceName, Message: "input is not an OpenAPI document object"}
	}

	stats := ComputeStats(doc)
	l.log().Debug("specification loaded",
		"paths", stats.PathCount, "operations", stats.OperationCount, "schemas", stats.SchemaCount)

	return &LoadResult{
		SourcePath:   sourceName,
		SourceFormat: format,
		Document:     doc,
		SourceSize:   int64(len(data)),
		Stats:        stats,
	}, nil
}

// detectFormat determines the source format from the file extension,
// falling back to content sniffing for unknown extensions.
func detectFormat(sourceName string, data []byte) SourceFormat {
	switch strings.ToLower(filepath.Ext(sourceName)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// jsonPathOrder extracts the order of the top-level "paths" keys from a
// JSON document. Returns nil when the order cannot be determined; callers
// then fall back to sorted iteration.
func jsonPathOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}
		if key != "paths" {
			if err := skipJSONValue(dec); err != nil {
				return nil
			}
			continue
		}
		open, err := dec.Token()
		if err != nil {
			return nil
		}
		if d, ok := open.(json.Delim); !ok || d != '{' {
			return nil
		}
		var order []string
		for dec.More() {
			pathTok, err := dec.Token()
			if err != nil {
				return nil
			}
			pathKey, ok := pathTok.(string)
			if !ok {
				return nil
			}
			order = append(order, pathKey)
			if err := skipJSONValue(dec); err != nil {
				return nil
			}
		}
		return order
	}
	return nil
}

// skipJSONValue consumes and discards the next complete JSON value.
func skipJSONValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		for dec.More() {
			if err := skipJSONValue(dec); err != nil {
				return err
			}
		}
		_, err := dec.Token()
		return err
	}
	return nil
}

// yamlPathOrder extracts the order of the top-level "paths" keys from a
// YAML document via the node tree. Returns nil when the order cannot be
// determined.
func yamlPathOrder(data []byte) []string {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != "paths" {
			continue
		}
		paths := mapping.Content[i+1]
		if paths.Kind != yaml.MappingNode {
			return nil
		}
		order := make([]string, 0, len(paths.Content)/2)
		for j := 0; j+1 < len(paths.Content); j += 2 {
			order = append(order, paths.Content[j].Value)
		}
		return order
	}
	return nil
}
