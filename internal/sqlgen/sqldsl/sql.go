package sqldsl

import (
	"fmt"
	"strings"
)

// SQLer is an interface for types that can render SQL.
// Statements implement it; it is also satisfied by every Expr.
type SQLer interface {
	SQL() string
}

// Optf returns formatted string if condition is true, empty string otherwise.
// Useful for optional SQL clauses.
func Optf(cond bool, format string, args ...any) string {
	if !cond {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

// JoinClause represents a SQL JOIN clause.
type JoinClause struct {
	Type      string // "INNER", "LEFT", "RIGHT", "FULL"
	TableExpr TableExpr
	On        Expr
}

// SQL renders the JOIN clause.
func (j JoinClause) SQL() string {
	joinKeyword := strings.ToUpper(j.Type) + " JOIN"
	if j.Type == "" {
		joinKeyword = "JOIN"
	}
	if j.On == nil {
		return joinKeyword + " " + j.TableExpr.TableSQL()
	}
	return joinKeyword + " " + j.TableExpr.TableSQL() + " ON " + j.On.SQL()
}

// SelectStmt represents a single-line SELECT used as a nested query.
// No GROUP BY, ORDER BY or LIMIT.
type SelectStmt struct {
	Columns  []string
	FromExpr TableExpr
	Joins    []JoinClause
	Where    Expr
}

// SQL renders the SELECT statement.
func (s SelectStmt) SQL() string {
	parts := []string{"SELECT " + s.columnsSQL()}
	if s.FromExpr != nil {
		parts = append(parts, "FROM "+s.FromExpr.TableSQL())
	}
	for _, j := range s.Joins {
		parts = append(parts, j.SQL())
	}
	if s.Where != nil {
		parts = append(parts, "WHERE "+s.Where.SQL())
	}
	return strings.Join(parts, " ")
}

func (s SelectStmt) columnsSQL() string {
	if len(s.Columns) == 0 {
		return "*"
	}
	return strings.Join(s.Columns, ", ")
}

// Script renders statements separated by a blank line.
type Script []SQLer

// SQL renders the script.
func (s Script) SQL() string {
	parts := make([]string, len(s))
	for i, stmt := range s {
		parts[i] = stmt.SQL()
	}
	return strings.Join(parts, "\n\n")
}
