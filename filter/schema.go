package filter

import "fmt"

// Schema is the immutable table of filterable fields for one query shape.
// Build it once at startup; it is read-only afterwards and safe for
// unsynchronized concurrent use.
type Schema struct {
	fields map[string]Field
}

// NewSchema validates the field declarations and builds the lookup table.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		if !fieldNamePattern.MatchString(f.name) {
			return nil, fmt.Errorf("NewSchema: invalid field name %q", f.name)
		}
		switch f.name {
		case keyLimit, keySkip, keyOrderBy:
			return nil, fmt.Errorf("NewSchema: field name %q is reserved", f.name)
		}
		if _, ok := s.fields[f.name]; ok {
			return nil, fmt.Errorf("NewSchema: duplicate field %q", f.name)
		}
		s.fields[f.name] = f
	}
	return s, nil
}

// MustSchema is NewSchema that panics on invalid declarations. Meant for
// package-level schema variables.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) resolve(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// columnRef is the identifier emitted into SQL. It comes from the field
// declaration only, never from the query string.
func (f Field) columnRef() string {
	if f.table != "" {
		return f.table + "." + f.column
	}
	return f.column
}
