package sqldsl

import (
	"strconv"
	"strings"
)

// Expr is the interface that all SQL expression types implement.
type Expr interface {
	SQL() string
}

// Col represents a column reference (e.g., owner_id or t.owner_id).
// The name is trusted caller input and is emitted verbatim.
type Col struct {
	Table  string
	Column string
}

// SQL renders the column reference.
func (c Col) SQL() string {
	if c.Table == "" {
		return c.Column
	}
	return c.Table + "." + c.Column
}

// Lit represents a literal string value (auto-quoted with single quotes).
type Lit string

// SQL renders the literal with single quotes.
func (l Lit) SQL() string {
	// Escape single quotes by doubling them
	escaped := strings.ReplaceAll(string(l), "'", "''")
	return "'" + escaped + "'"
}

// Raw is an already valid SQL fragment that is emitted without quoting.
// Function calls, casts and session lookups are passed around as Raw.
type Raw string

// SQL renders the raw SQL as-is.
func (r Raw) SQL() string {
	return string(r)
}

// Int represents an integer literal.
type Int int64

// SQL renders the integer.
func (i Int) SQL() string {
	return strconv.FormatInt(int64(i), 10)
}

// Uint represents an unsigned integer literal.
type Uint uint64

// SQL renders the unsigned integer.
func (u Uint) SQL() string {
	return strconv.FormatUint(uint64(u), 10)
}

// Float represents a floating point literal.
// Renders the shortest decimal form, so 1.0 becomes 1.
type Float float64

// SQL renders the float.
func (f Float) SQL() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

// Bool represents a boolean literal.
type Bool bool

// SQL renders the boolean in lower case.
func (b Bool) SQL() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents SQL NULL.
type Null struct{}

// SQL renders NULL.
func (Null) SQL() string {
	return "NULL"
}

// Func represents a SQL function call.
type Func struct {
	Name string
	Args []Expr
}

// SQL renders the function call.
func (f Func) SQL() string {
	return f.Name + "(" + joinExprList(f.Args) + ")"
}

// Cast represents a PostgreSQL shorthand cast (expr::type).
type Cast struct {
	Expr Expr
	Type string
}

// SQL renders the cast.
func (c Cast) SQL() string {
	return c.Expr.SQL() + "::" + c.Type
}

// Paren wraps an expression in parentheses.
type Paren struct {
	Expr Expr
}

// SQL renders the parenthesized expression.
func (p Paren) SQL() string {
	return "(" + p.Expr.SQL() + ")"
}

// joinExprList renders expressions separated by ", ".
func joinExprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.SQL()
	}
	return strings.Join(parts, ", ")
}
