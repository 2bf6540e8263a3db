package filter

import (
	"strconv"
	"strings"
)

// Sink receives the generated clause. Push appends literal SQL text and
// PushBind appends one placeholder plus its bound value. The split mirrors
// common query-builder surfaces, so adapting one is usually a few lines.
type Sink interface {
	Push(sql string)
	PushBind(value any)
}

// Apply walks the filter and writes WHERE terms, ORDER BY, LIMIT and OFFSET
// to the sink, always in that order regardless of input order. Every
// condition is emitted as " AND <term>"; the caller primes the destination
// query with a tautology such as "WHERE TRUE" so the fragment composes even
// when empty. LIMIT and OFFSET are validated unsigned integers and are
// inlined; all comparison values go through PushBind.
//
// Apply is total: it cannot fail on a Filter produced by a Parser. The sink
// is only used for the duration of the call.
func (f *Filter) Apply(s Sink) {
	for _, g := range f.groups {
		for _, c := range g.conds {
			s.Push(" AND ")
			s.Push(g.column)
			s.Push(c.op.sql)
			s.PushBind(c.value)
		}
	}
	if f.sort != nil {
		s.Push(" ORDER BY ")
		s.Push(f.sort.column)
		if f.sort.desc {
			s.Push(" DESC")
		} else {
			s.Push(" ASC")
		}
	}
	if f.limit != nil {
		s.Push(" LIMIT ")
		s.Push(strconv.FormatUint(*f.limit, 10))
	}
	if f.skip != nil {
		s.Push(" OFFSET ")
		s.Push(strconv.FormatUint(*f.skip, 10))
	}
}

// ToSQL renders the clause with ? placeholders and returns it together with
// the bound parameters in emission order.
func (f *Filter) ToSQL() (string, []any) {
	w := NewSQLWriter()
	f.Apply(w)
	return strings.TrimSpace(w.SQL()), w.Params()
}

// ToPostgres renders the clause with $n placeholders, numbering from
// startIndex. Pass 1 unless the surrounding query already binds parameters.
func (f *Filter) ToPostgres(startIndex int) (string, []any) {
	w := NewSQLWriter(WithPostgresPlaceholders(startIndex))
	f.Apply(w)
	return strings.TrimSpace(w.SQL()), w.Params()
}

// SQLWriter is the built-in Sink: a plain text buffer plus parameter slice.
type SQLWriter struct {
	sql    strings.Builder
	params []any
	dollar bool
	next   int
}

// WriterOption configures a SQLWriter.
type WriterOption func(*SQLWriter)

// WithPostgresPlaceholders switches the writer from ? to $n placeholders,
// numbering from startIndex.
func WithPostgresPlaceholders(startIndex int) WriterOption {
	return func(w *SQLWriter) {
		w.dollar = true
		w.next = startIndex
	}
}

// NewSQLWriter creates a writer emitting ? placeholders by default.
func NewSQLWriter(options ...WriterOption) *SQLWriter {
	w := &SQLWriter{}
	for _, option := range options {
		if option != nil {
			option(w)
		}
	}
	return w
}

func (w *SQLWriter) Push(sql string) {
	w.sql.WriteString(sql)
}

func (w *SQLWriter) PushBind(value any) {
	if w.dollar {
		w.sql.WriteByte('$')
		w.sql.WriteString(strconv.Itoa(w.next))
		w.next++
	} else {
		w.sql.WriteByte('?')
	}
	w.params = append(w.params, value)
}

// SQL returns the accumulated clause text.
func (w *SQLWriter) SQL() string { return w.sql.String() }

// Params returns the bound values in emission order.
func (w *SQLWriter) Params() []any { return w.params }
