package spec

// SchemaKind is an explicit tagged union over the schema types the
// converter recognizes. A schema whose declared type fails to match any
// known tag reports KindInvalid; callers decide whether that is an error
// rather than guessing at runtime.
type SchemaKind int

const (
	// KindInvalid indicates a missing or unrecognized type declaration.
	KindInvalid SchemaKind = iota
	// KindString is a JSON string schema.
	KindString
	// KindInteger is a JSON integer schema.
	KindInteger
	// KindNumber is a JSON number schema.
	KindNumber
	// KindBoolean is a JSON boolean schema.
	KindBoolean
	// KindArray is a JSON array schema.
	KindArray
	// KindObject is a JSON object schema.
	KindObject
)

// String returns the schema kind's type name as it appears in documents.
func (k SchemaKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Schema is a recursive JSON-schema-like fragment describing a value's
// type and structure. Cyclic schemas are out of scope; generation does
// not guard against self-referential input.
type Schema struct {
	Ref         string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string             `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string             `json:"format,omitempty" yaml:"format,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Enum        []any              `json:"enum,omitempty" yaml:"enum,omitempty"`
	Example     any                `json:"example,omitempty" yaml:"example,omitempty"`
}

// Kind maps the schema's declared type to its SchemaKind tag.
func (s *Schema) Kind() SchemaKind {
	if s == nil {
		return KindInvalid
	}
	switch s.Type {
	case "string":
		return KindString
	case "integer":
		return KindInteger
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "array":
		return KindArray
	case "object":
		return KindObject
	default:
		return KindInvalid
	}
}
