// Package filter converts bracket-annotated query strings into parameterized
// SQL fragments. It's designed to be small, safe and predictable: every
// comparison value is bound as a parameter, and identifiers only ever come
// from the configured schema, never from user input.
//
// A query string like
//
//	name[sw]=Ali&age[gte]=18&limit=10&order_by[desc]=age
//
// becomes
//
//	AND name LIKE ? AND age >= ? ORDER BY age DESC LIMIT 10
//
// with bound parameters ["Ali%", 18], ready to append to a query that was
// primed with a tautology such as "WHERE TRUE".
package filter
