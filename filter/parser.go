package filter

import (
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Reserved keys, intercepted before field resolution.
const (
	keyLimit   = "limit"
	keySkip    = "skip"
	keyOrderBy = "order_by"
)

var (
	// name or name[op]
	keyPattern       = regexp.MustCompile(`^(\w+)(?:\[([a-z_]+)\])?$`)
	fieldNamePattern = regexp.MustCompile(`^\w+$`)
)

// Parser turns query strings into Filters using a fixed Schema. A Parser is
// immutable and safe for concurrent use.
type Parser struct {
	schema   *Schema
	maxLimit uint64
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxLimit caps the client-supplied limit value. Zero (the default)
// means no cap.
func WithMaxLimit(n uint64) Option {
	return func(p *Parser) { p.maxLimit = n }
}

// NewParser creates a Parser for the given schema.
func NewParser(schema *Schema, options ...Option) *Parser {
	p := &Parser{schema: schema}
	for _, option := range options {
		if option != nil {
			option(p)
		}
	}
	return p
}

// ParseQuery parses a raw query string (the part after ?), preserving the
// order keys appear in. Parsing is fail-fast: the first bad key or value
// aborts with no partial result.
func (p *Parser) ParseQuery(rawQuery string) (*Filter, error) {
	f := newFilter()
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, found := strings.Cut(pair, "=")
		if !found {
			return nil, MalformedKeyError{Key: pair}
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, MalformedKeyError{Key: rawKey}
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, MalformedKeyError{Key: key}
		}
		if err := p.apply(f, key, value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Parse consumes already-parsed query values. Map iteration order is not
// deterministic, so keys are visited in sorted order; values of one key keep
// their slice order. Use ParseQuery to preserve the order of the original
// query string instead.
func (p *Parser) Parse(values url.Values) (*Filter, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f := newFilter()
	for _, key := range keys {
		for _, value := range values[key] {
			if err := p.apply(f, key, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// ParseRequest parses the request's query string, preserving key order.
func (p *Parser) ParseRequest(r *http.Request) (*Filter, error) {
	return p.ParseQuery(r.URL.RawQuery)
}

func (p *Parser) apply(f *Filter, key, value string) error {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return MalformedKeyError{Key: key}
	}
	field, token := m[1], m[2]
	if token == "" {
		token = "eq"
	}

	switch field {
	case keyLimit, keySkip:
		return p.applyPagination(f, field, token, value)
	case keyOrderBy:
		return p.applyOrderBy(f, token, value)
	}

	fld, ok := p.schema.resolve(field)
	if !ok || fld.skip {
		// Unknown and skipped fields are dropped so extraneous client
		// parameters don't fail the whole request.
		return nil
	}
	op, ok := lookupOperator(fld.kind, token)
	if !ok {
		return UnsupportedOperatorError{Field: field, Operator: token, Kind: fld.kind}
	}
	v, err := fld.parse(value)
	if err != nil {
		return TypeMismatchError{Field: field, Raw: value, Err: err}
	}
	if op.bind != nil {
		v = op.bind(v)
	}
	f.add(fld.columnRef(), op, v)
	return nil
}

func (p *Parser) applyPagination(f *Filter, field, token, value string) error {
	if token != "eq" {
		return UnsupportedOperatorError{Field: field, Operator: token, Kind: KindEqual}
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return TypeMismatchError{Field: field, Raw: value, Err: err}
	}
	if field == keyLimit {
		if p.maxLimit > 0 && n > p.maxLimit {
			n = p.maxLimit
		}
		f.limit = &n
	} else {
		f.skip = &n
	}
	return nil
}

// applyOrderBy resolves the sort field through the schema: an unmapped name
// here would end up as a raw identifier in ORDER BY, so unlike filter fields
// it is a hard error. The last order_by key wins.
func (p *Parser) applyOrderBy(f *Filter, direction, field string) error {
	var desc bool
	switch direction {
	case "asc":
	case "desc":
		desc = true
	default:
		return InvalidOrderDirectionError{Direction: direction}
	}
	fld, ok := p.schema.resolve(field)
	if !ok || fld.skip {
		return NotConfiguredError{Field: field}
	}
	f.sort = &sortSpec{column: fld.columnRef(), desc: desc}
	return nil
}
