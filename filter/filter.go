package filter

// Condition is one WHERE term: a column compared against a bound value.
// Wildcard rewrites for sw, ew and co are already applied to Value.
type Condition struct {
	Column   string
	Operator Op
	Value    any
}

// Filter is the parsed model of one request: ordered conditions, at most one
// sort and optional pagination. A Filter is built by a Parser, consumed once
// by Apply or ToSQL, and not meant to be shared between requests.
type Filter struct {
	groups []*group
	byCol  map[string]*group
	sort   *sortSpec
	limit  *uint64
	skip   *uint64
}

// group keeps all conditions of one column together. Groups stay in the
// order their column was first referenced; conditions within a group stay in
// parse order.
type group struct {
	column string
	conds  []cond
}

type cond struct {
	op    operator
	value any
}

type sortSpec struct {
	column string
	desc   bool
}

func newFilter() *Filter {
	return &Filter{byCol: make(map[string]*group)}
}

func (f *Filter) add(column string, op operator, value any) {
	g, ok := f.byCol[column]
	if !ok {
		g = &group{column: column}
		f.byCol[column] = g
		f.groups = append(f.groups, g)
	}
	g.conds = append(g.conds, cond{op: op, value: value})
}

// Conditions returns the WHERE terms in emission order.
func (f *Filter) Conditions() []Condition {
	var out []Condition
	for _, g := range f.groups {
		for _, c := range g.conds {
			out = append(out, Condition{Column: g.column, Operator: c.op.op, Value: c.value})
		}
	}
	return out
}

// OrderBy returns the sort column reference and direction, if one was
// requested.
func (f *Filter) OrderBy() (column string, desc bool, ok bool) {
	if f.sort == nil {
		return "", false, false
	}
	return f.sort.column, f.sort.desc, true
}

// Limit returns the requested limit, if one was set.
func (f *Filter) Limit() (uint64, bool) {
	if f.limit == nil {
		return 0, false
	}
	return *f.limit, true
}

// Skip returns the requested row offset, if one was set.
func (f *Filter) Skip() (uint64, bool) {
	if f.skip == nil {
		return 0, false
	}
	return *f.skip, true
}
