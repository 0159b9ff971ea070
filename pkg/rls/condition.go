package rls

import (
	"reflect"

	"github.com/pthm/rowguard/internal/sqlgen/sqldsl"
)

// Condition is a boolean predicate usable in USING, WITH CHECK, WHERE and
// JOIN ... ON positions.
//
// Conditions are immutable: And and Or return a new Chain that keeps the
// receiver as its left operand, so a condition can be shared between
// policies without aliasing surprises.
type Condition interface {
	SQL() string
	And(other Condition) Condition
	Or(other Condition) Condition
}

// Column is the entry point for building a predicate on a column:
// rls.Column("owner_id").Eq(rls.Auth.UID()). It is a shell holding only the
// name; calling a comparison method produces a Comparison on that column.
type Column string

// SQL renders the bare column name, so a Column can be used as the value of
// another comparison: Column("t.id").Eq(Column("p.team_id")).
func (c Column) SQL() string { return sqldsl.Col{Column: string(c)}.SQL() }

func (c Column) compare(op string, value any) Comparison {
	return Comparison{column: string(c), op: op, value: value}
}

// Eq builds "column = value".
func (c Column) Eq(value any) Comparison { return c.compare(sqldsl.OpEq, value) }

// Gt builds "column > value".
func (c Column) Gt(value any) Comparison { return c.compare(sqldsl.OpGt, value) }

// Gte builds "column >= value".
func (c Column) Gte(value any) Comparison { return c.compare(sqldsl.OpGte, value) }

// Lt builds "column < value".
func (c Column) Lt(value any) Comparison { return c.compare(sqldsl.OpLt, value) }

// Lte builds "column <= value".
func (c Column) Lte(value any) Comparison { return c.compare(sqldsl.OpLte, value) }

// Like builds "column LIKE pattern".
func (c Column) Like(pattern string) Comparison { return c.compare(sqldsl.OpLike, pattern) }

// Ilike builds "column ILIKE pattern".
func (c Column) Ilike(pattern string) Comparison { return c.compare(sqldsl.OpILike, pattern) }

// In builds "column IN (v1, v2, ...)". A single slice or array argument is
// expanded, so In([]int{1, 2}) and In(1, 2) are the same. Calling it with no
// values renders an empty list, which the database will reject.
func (c Column) In(values ...any) Comparison {
	return Comparison{column: string(c), op: sqldsl.OpIn, values: spread(values), list: true}
}

// InSubQuery builds "column IN (SELECT ...)". The sub-query is copied, so
// later changes to q do not affect the returned comparison.
func (c Column) InSubQuery(q *SubQuery) Comparison {
	return Comparison{column: string(c), op: sqldsl.OpIn, subquery: q.clone()}
}

// Contains builds "column @> ARRAY[v1, v2, ...]". A single slice or array
// argument is expanded as in In.
func (c Column) Contains(values ...any) Comparison {
	return Comparison{column: string(c), op: sqldsl.OpArray, values: spread(values), list: true}
}

// spread copies values, expanding a lone slice or array argument into its
// elements.
func spread(values []any) []any {
	if len(values) == 1 && values[0] != nil {
		rv := reflect.ValueOf(values[0])
		if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
			out := make([]any, rv.Len())
			for i := range out {
				out[i] = rv.Index(i).Interface()
			}
			return out
		}
	}
	return append([]any{}, values...)
}

// IsNull builds "column IS NULL".
func (c Column) IsNull() Comparison { return Comparison{column: string(c), op: sqldsl.OpIsNull} }

// IsNotNull builds "column IS NOT NULL".
func (c Column) IsNotNull() Comparison { return Comparison{column: string(c), op: sqldsl.OpIsNotNull} }

// IsOwner is shorthand for Eq(Auth.UID()).
func (c Column) IsOwner() Comparison { return c.Eq(Auth.UID()) }

// IsPublic is shorthand for Eq(true).
func (c Column) IsPublic() Comparison { return c.Eq(true) }

// Comparison is a leaf predicate: a single column compared with a value,
// a list of values, a sub-query, or nothing for the unary operators.
type Comparison struct {
	column   string
	op       string
	value    any
	values   []any
	list     bool
	subquery *SubQuery
}

// ColumnName returns the compared column.
func (c Comparison) ColumnName() string { return c.column }

// Operator returns the SQL operator (e.g. "=", "IN", "IS NULL").
func (c Comparison) Operator() string { return c.op }

// And chains other with AND.
func (c Comparison) And(other Condition) Condition { return chain(c, sqldsl.ConnAnd, other) }

// Or chains other with OR.
func (c Comparison) Or(other Condition) Condition { return chain(c, sqldsl.ConnOr, other) }

// SQL renders the comparison.
func (c Comparison) SQL() string { return c.expr().SQL() }

func (c Comparison) expr() sqldsl.Expr {
	col := sqldsl.Col{Column: c.column}
	switch {
	case c.op == sqldsl.OpIsNull:
		return sqldsl.IsNull{Expr: col}
	case c.op == sqldsl.OpIsNotNull:
		return sqldsl.IsNotNull{Expr: col}
	case c.op == sqldsl.OpIn && c.subquery != nil:
		return sqldsl.InQuery{Expr: col, Query: c.subquery.stmt()}
	case c.op == sqldsl.OpIn && c.list:
		return sqldsl.In{Expr: col, Values: sqldsl.Values(c.values)}
	case c.op == sqldsl.OpArray:
		return sqldsl.Contains{Expr: col, Values: sqldsl.Values(c.values)}
	default:
		return sqldsl.BinaryOp{Left: col, Op: c.op, Right: sqldsl.Value(c.value)}
	}
}

// Chain joins two conditions with a connective. It renders
// "(<left> <connective> <right>)", always parenthesized.
type Chain struct {
	left       Condition
	connective string
	right      Condition
}

func chain(left Condition, connective string, right Condition) Chain {
	return Chain{left: left, connective: connective, right: right}
}

// Left returns the left operand.
func (c Chain) Left() Condition { return c.left }

// Right returns the right operand.
func (c Chain) Right() Condition { return c.right }

// Connective returns "AND" or "OR".
func (c Chain) Connective() string { return c.connective }

// And wraps the whole chain as the left side of a new AND.
func (c Chain) And(other Condition) Condition { return chain(c, sqldsl.ConnAnd, other) }

// Or wraps the whole chain as the left side of a new OR.
func (c Chain) Or(other Condition) Condition { return chain(c, sqldsl.ConnOr, other) }

// SQL renders the chain.
func (c Chain) SQL() string {
	return sqldsl.Connective{Left: operand(c.left), Op: c.connective, Right: operand(c.right)}.SQL()
}

// operand renders a nil condition as empty text rather than panicking.
func operand(c Condition) sqldsl.Expr {
	if c == nil {
		return sqldsl.Raw("")
	}
	return c
}

// Walk visits cond and, for chains, both operands depth first, left before
// right. Returning false from fn stops the descent into that node's
// children. Sub-queries are not entered.
func Walk(cond Condition, fn func(Condition) bool) {
	if cond == nil || !fn(cond) {
		return
	}
	if ch, ok := cond.(Chain); ok {
		Walk(ch.left, fn)
		Walk(ch.right, fn)
	}
}
