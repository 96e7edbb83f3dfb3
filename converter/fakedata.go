package converter

import (
	"sort"

	"github.com/apibridge/swag2postman/pmerrors"
	"github.com/apibridge/swag2postman/spec"
)

// fakeObject generates a JSON-compatible value tree for an object
// schema's properties. Properties are visited in sorted key order so a
// seeded word source produces the same tree every run. There is no
// guard against self-referential schemas; cyclic input is out of scope.
func (c *Converter) fakeObject(schemaName string, s *spec.Schema) (map[string]any, error) {
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(keys))
	for _, key := range keys {
		value, err := c.fakeValue(schemaName, key, s.Properties[key])
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}

// fakeValue generates a single placeholder value for a property schema.
// A property without a recognizable type is invalid input and yields a
// *pmerrors.SchemaError naming the property, even when the node carries
// an example or enum. For typed properties a declared example wins over
// generation; otherwise the first enum entry; otherwise a representative
// value of the declared kind.
func (c *Converter) fakeValue(schemaName, property string, s *spec.Schema) (any, error) {
	kind := s.Kind()
	if kind == spec.KindInvalid {
		return nil, &pmerrors.SchemaError{
			Property:   property,
			SchemaName: schemaName,
			Message:    "property has no recognizable type",
		}
	}

	if s.Example != nil {
		return s.Example, nil
	}
	if len(s.Enum) > 0 {
		return s.Enum[0], nil
	}

	switch kind {
	case spec.KindString:
		return c.words()(), nil
	case spec.KindInteger:
		return placeholderInteger, nil
	case spec.KindNumber:
		return placeholderNumber, nil
	case spec.KindBoolean:
		return true, nil
	case spec.KindArray:
		if s.Items == nil {
			return nil, &pmerrors.SchemaError{
				Property:   property,
				SchemaName: schemaName,
				Message:    "array schema declares no items",
			}
		}
		item, err := c.fakeValue(schemaName, property, s.Items)
		if err != nil {
			return nil, err
		}
		return []any{item}, nil
	case spec.KindObject:
		return c.fakeObject(schemaName, s)
	default:
		return nil, &pmerrors.SchemaError{
			Property:   property,
			SchemaName: schemaName,
			Message:    "property has no recognizable type",
		}
	}
}
