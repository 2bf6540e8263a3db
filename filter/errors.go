package filter

import "fmt"

// MalformedKeyError is returned when a query-string key doesn't match the
// name or name[op] grammar. Parsing is fail-fast: the first malformed key
// aborts the whole parse.
type MalformedKeyError struct {
	Key string
}

func (e MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed query key: %q", e.Key)
}

// UnsupportedOperatorError is returned when an operator token is not legal
// for the field's declared kind.
type UnsupportedOperatorError struct {
	Field    string
	Operator string
	Kind     Kind
}

func (e UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("operator %q not supported for %s field %q", e.Operator, e.Kind, e.Field)
}

// TypeMismatchError is returned when a raw value cannot be parsed into the
// field's declared type.
type TypeMismatchError struct {
	Field string
	Raw   string
	Err   error
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid value for field %q: %q", e.Field, e.Raw)
}

func (e TypeMismatchError) Unwrap() error { return e.Err }

// NotConfiguredError is returned when order_by names a field that isn't in
// the schema. Unknown filter fields are silently ignored, but an unmapped
// sort field would put user input into the ORDER BY clause, so it is always
// a hard error.
type NotConfiguredError struct {
	Field string
}

func (e NotConfiguredError) Error() string {
	return fmt.Sprintf("field not configured: %q", e.Field)
}

// InvalidOrderDirectionError is returned for order_by keys whose bracket
// token is neither asc nor desc.
type InvalidOrderDirectionError struct {
	Direction string
}

func (e InvalidOrderDirectionError) Error() string {
	return fmt.Sprintf("invalid order direction: %q (must be asc or desc)", e.Direction)
}
