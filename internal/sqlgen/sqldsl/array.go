package sqldsl

// ArrayLiteral represents a SQL array literal: ARRAY[values].
// An empty literal renders ARRAY[] and is left for the database to reject.
type ArrayLiteral struct {
	Values []Expr
}

// SQL renders the array literal.
func (a ArrayLiteral) SQL() string {
	return "ARRAY[" + joinExprList(a.Values) + "]"
}

// Contains represents the array containment operator: expr @> ARRAY[values].
type Contains struct {
	Expr   Expr
	Values []Expr
}

// SQL renders the containment check.
func (c Contains) SQL() string {
	return c.Expr.SQL() + " @> " + ArrayLiteral{Values: c.Values}.SQL()
}
