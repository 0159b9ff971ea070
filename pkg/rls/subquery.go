package rls

import (
	"github.com/pthm/rowguard/internal/sqlgen/sqldsl"
)

// JoinKind selects the JOIN flavour of a sub-query join.
type JoinKind string

// Supported join kinds.
const (
	JoinInner JoinKind = "inner"
	JoinLeft  JoinKind = "left"
	JoinRight JoinKind = "right"
	JoinFull  JoinKind = "full"
)

type join struct {
	table string
	alias string
	kind  JoinKind
	on    Condition
}

// SubQuery is a minimal SELECT builder used as the right-hand side of an
// IN predicate. Unlike conditions, it is a mutable builder: every method
// changes the receiver and returns it for chaining.
type SubQuery struct {
	table   string
	alias   string
	columns []string
	joins   []join
	where   Condition
}

// From starts a sub-query on table. An optional alias may follow.
func From(table string, alias ...string) *SubQuery {
	q := &SubQuery{table: table}
	if len(alias) > 0 {
		q.alias = alias[0]
	}
	return q
}

// Select sets the selected columns, replacing any previous selection.
// With no columns the query selects *.
func (q *SubQuery) Select(columns ...string) *SubQuery {
	q.columns = append([]string(nil), columns...)
	return q
}

// Where sets the WHERE condition. The last call wins.
func (q *SubQuery) Where(cond Condition) *SubQuery {
	q.where = cond
	return q
}

// Join adds an INNER JOIN.
func (q *SubQuery) Join(table string, on Condition) *SubQuery {
	return q.JoinAs(table, on, JoinInner, "")
}

// LeftJoin adds a LEFT JOIN.
func (q *SubQuery) LeftJoin(table string, on Condition) *SubQuery {
	return q.JoinAs(table, on, JoinLeft, "")
}

// RightJoin adds a RIGHT JOIN.
func (q *SubQuery) RightJoin(table string, on Condition) *SubQuery {
	return q.JoinAs(table, on, JoinRight, "")
}

// FullJoin adds a FULL JOIN.
func (q *SubQuery) FullJoin(table string, on Condition) *SubQuery {
	return q.JoinAs(table, on, JoinFull, "")
}

// JoinAs adds a join of the given kind with an optional alias. An empty kind
// means inner. Joins render in the order they were added.
func (q *SubQuery) JoinAs(table string, on Condition, kind JoinKind, alias string) *SubQuery {
	if kind == "" {
		kind = JoinInner
	}
	q.joins = append(q.joins, join{table: table, alias: alias, kind: kind, on: on})
	return q
}

// SQL renders the SELECT on a single line.
func (q *SubQuery) SQL() string {
	return q.stmt().SQL()
}

func (q *SubQuery) stmt() sqldsl.SelectStmt {
	stmt := sqldsl.SelectStmt{
		Columns:  q.columns,
		FromExpr: sqldsl.TableAs(q.table, q.alias),
	}
	for _, j := range q.joins {
		stmt.Joins = append(stmt.Joins, sqldsl.JoinClause{
			Type:      string(j.kind),
			TableExpr: sqldsl.TableAs(j.table, j.alias),
			On:        j.on,
		})
	}
	stmt.Where = q.where
	return stmt
}

// clone returns a deep enough copy that later builder calls on q do not
// leak into the copy. Conditions are immutable and are shared.
func (q *SubQuery) clone() *SubQuery {
	if q == nil {
		return nil
	}
	c := *q
	c.columns = append([]string(nil), q.columns...)
	c.joins = append([]join(nil), q.joins...)
	return &c
}
