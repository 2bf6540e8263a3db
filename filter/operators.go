package filter

// Op identifies comparison semantics within a filter kind.
type Op string

const (
	OpEq         Op = "eq"
	OpNe         Op = "ne"
	OpLike       Op = "like"
	OpNotLike    Op = "not_like"
	OpStartsWith Op = "sw"
	OpEndsWith   Op = "ew"
	OpContains   Op = "co"
	OpGt         Op = "gt"
	OpLt         Op = "lt"
	OpGte        Op = "gte"
	OpLte        Op = "lte"
)

// operator couples an Op with its SQL comparison text and an optional
// bound-value rewrite (the LIKE wildcard affixes for sw, ew and co).
type operator struct {
	op   Op
	sql  string
	bind func(v any) any
}

// Operator token tables per kind. Long forms and single-letter shorthands
// accepted on the query-string surface normalize onto the canonical Op.
var stringOperators = map[string]operator{
	"eq":          {op: OpEq, sql: " = "},
	"ne":          {op: OpNe, sql: " <> "},
	"like":        {op: OpLike, sql: " LIKE "},
	"l":           {op: OpLike, sql: " LIKE "},
	"not_like":    {op: OpNotLike, sql: " NOT LIKE "},
	"nl":          {op: OpNotLike, sql: " NOT LIKE "},
	"sw":          {op: OpStartsWith, sql: " LIKE ", bind: bindSuffix},
	"starts_with": {op: OpStartsWith, sql: " LIKE ", bind: bindSuffix},
	"ew":          {op: OpEndsWith, sql: " LIKE ", bind: bindPrefix},
	"ends_with":   {op: OpEndsWith, sql: " LIKE ", bind: bindPrefix},
	"co":          {op: OpContains, sql: " LIKE ", bind: bindBoth},
	"contains":    {op: OpContains, sql: " LIKE ", bind: bindBoth},
	"c":           {op: OpContains, sql: " LIKE ", bind: bindBoth},
}

var numberOperators = map[string]operator{
	"eq":  {op: OpEq, sql: " = "},
	"ne":  {op: OpNe, sql: " <> "},
	"gt":  {op: OpGt, sql: " > "},
	"lt":  {op: OpLt, sql: " < "},
	"gte": {op: OpGte, sql: " >= "},
	"lte": {op: OpLte, sql: " <= "},
}

var equalOperators = map[string]operator{
	"eq": {op: OpEq, sql: " = "},
}

func bindSuffix(v any) any { return v.(string) + "%" }
func bindPrefix(v any) any { return "%" + v.(string) }
func bindBoth(v any) any   { return "%" + v.(string) + "%" }

func lookupOperator(kind Kind, token string) (operator, bool) {
	switch kind {
	case KindString:
		op, ok := stringOperators[token]
		return op, ok
	case KindNumber:
		op, ok := numberOperators[token]
		return op, ok
	default:
		op, ok := equalOperators[token]
		return op, ok
	}
}
