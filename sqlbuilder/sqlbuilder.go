// Package sqlbuilder applies parsed filters to huandu/go-sqlbuilder select
// builders, for callers that compose whole statements instead of appending a
// clause fragment to a hand-written query.
package sqlbuilder

import (
	"math"

	builder "github.com/huandu/go-sqlbuilder"

	"github.com/poki/querystring-filter-to-sql/filter"
)

// Apply adds the filter's conditions, ordering and pagination to sb.
func Apply(sb *builder.SelectBuilder, f *filter.Filter) {
	var exprs []string
	for _, c := range f.Conditions() {
		exprs = append(exprs, expr(sb, c))
	}
	if len(exprs) > 0 {
		sb.Where(exprs...)
	}
	if column, desc, ok := f.OrderBy(); ok {
		sb.OrderBy(column)
		if desc {
			sb.Desc()
		} else {
			sb.Asc()
		}
	}
	if n, ok := f.Limit(); ok {
		sb.Limit(toInt(n))
	}
	if n, ok := f.Skip(); ok {
		sb.Offset(toInt(n))
	}
}

func expr(sb *builder.SelectBuilder, c filter.Condition) string {
	switch c.Operator {
	case filter.OpEq:
		return sb.Equal(c.Column, c.Value)
	case filter.OpNe:
		return sb.NotEqual(c.Column, c.Value)
	case filter.OpGt:
		return sb.GreaterThan(c.Column, c.Value)
	case filter.OpGte:
		return sb.GreaterEqualThan(c.Column, c.Value)
	case filter.OpLt:
		return sb.LessThan(c.Column, c.Value)
	case filter.OpLte:
		return sb.LessEqualThan(c.Column, c.Value)
	case filter.OpNotLike:
		return sb.NotLike(c.Column, c.Value)
	default:
		// like, sw, ew, co — the wildcards are already part of the value.
		return sb.Like(c.Column, c.Value)
	}
}

func toInt(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
