package filter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind is the declared semantic category of a field. It constrains which
// operators are legal for that field.
type Kind int

const (
	// KindString fields support eq, ne, like, not_like, sw, ew and co.
	KindString Kind = iota
	// KindNumber fields support eq, ne, gt, lt, gte and lte.
	KindNumber
	// KindEqual fields support eq only.
	KindEqual
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindEqual:
		return "equal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field declares one filterable query-string field and the column it maps
// to. Build fields with String, Number or Equal and pass them to NewSchema.
type Field struct {
	name   string
	column string
	table  string
	skip   bool
	kind   Kind
	parse  func(string) (any, error)
}

// FieldOption customizes a field declaration.
type FieldOption func(*Field)

// WithColumn maps the field to a differently named column.
func WithColumn(column string) FieldOption {
	return func(f *Field) { f.column = column }
}

// WithTable prefixes the column reference with a table name or alias.
func WithTable(table string) FieldOption {
	return func(f *Field) { f.table = table }
}

// Skip declares the field but keeps it out of generated clauses. Query keys
// naming a skipped field are ignored, not errors.
func Skip() FieldOption {
	return func(f *Field) { f.skip = true }
}

func newField(name string, kind Kind, parse func(string) (any, error), options []FieldOption) Field {
	f := Field{name: name, column: name, kind: kind, parse: parse}
	for _, option := range options {
		if option != nil {
			option(&f)
		}
	}
	return f
}

// String declares a string field. Values are bound as-is; the sw, ew and co
// operators add the LIKE wildcards.
func String(name string, options ...FieldOption) Field {
	return newField(name, KindString, func(s string) (any, error) { return s, nil }, options)
}

// Numeric covers the types a Number field can be declared with.
type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Number declares a numeric field. Raw values are parsed into N before
// binding; unparsable or out-of-range input is a TypeMismatchError.
func Number[N Numeric](name string, options ...FieldOption) Field {
	return newField(name, KindNumber, parseNumber[N], options)
}

// Equal declares a field that only supports equality, for any type with a
// text parse. The parse function runs on the raw query value:
//
//	filter.Equal("id", uuid.Parse)
//	filter.Equal("active", strconv.ParseBool)
//	filter.Equal("since", filter.ParseTime(time.RFC3339))
func Equal[T any](name string, parse func(string) (T, error), options ...FieldOption) Field {
	return newField(name, KindEqual, func(s string) (any, error) { return parse(s) }, options)
}

// ParseTime returns a parse function for Equal fields holding timestamps.
func ParseTime(layout string) func(string) (time.Time, error) {
	return func(s string) (time.Time, error) { return time.Parse(layout, s) }
}

// ParseUUID parses the raw value as a UUID.
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

func parseNumber[N Numeric](s string) (any, error) {
	var zero N
	switch any(zero).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return N(f), nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		n := N(u)
		if uint64(n) != u {
			return nil, &strconv.NumError{Func: "ParseUint", Num: s, Err: strconv.ErrRange}
		}
		return n, nil
	default:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		n := N(i)
		if int64(n) != i {
			return nil, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrRange}
		}
		return n, nil
	}
}
