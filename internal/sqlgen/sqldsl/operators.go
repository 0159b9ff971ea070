package sqldsl

// Comparison operators as they appear in rendered SQL.
const (
	OpEq    = "="
	OpGt    = ">"
	OpGte   = ">="
	OpLt    = "<"
	OpLte   = "<="
	OpLike  = "LIKE"
	OpILike = "ILIKE"
	OpIn    = "IN"
	OpArray = "@>"

	OpIsNull    = "IS NULL"
	OpIsNotNull = "IS NOT NULL"
)

// Logical connectives.
const (
	ConnAnd = "AND"
	ConnOr  = "OR"
)

// BinaryOp represents "left op right" for any comparison operator.
// The operator is emitted as given; unknown operators pass through.
type BinaryOp struct {
	Left  Expr
	Op    string
	Right Expr
}

func (b BinaryOp) SQL() string { return b.Left.SQL() + " " + b.Op + " " + b.Right.SQL() }

// Eq creates an equality comparison (=).
func Eq(left, right Expr) BinaryOp { return BinaryOp{Left: left, Op: OpEq, Right: right} }

// In represents an IN clause over a list of expressions.
type In struct {
	Expr   Expr
	Values []Expr
}

func (i In) SQL() string {
	return i.Expr.SQL() + " IN (" + joinExprList(i.Values) + ")"
}

// InQuery represents an IN clause over a subquery.
type InQuery struct {
	Expr  Expr
	Query SQLer
}

func (i InQuery) SQL() string {
	return i.Expr.SQL() + " IN (" + i.Query.SQL() + ")"
}

// IsNull represents IS NULL check.
type IsNull struct {
	Expr Expr
}

func (i IsNull) SQL() string { return i.Expr.SQL() + " " + OpIsNull }

// IsNotNull represents IS NOT NULL check.
type IsNotNull struct {
	Expr Expr
}

func (i IsNotNull) SQL() string { return i.Expr.SQL() + " " + OpIsNotNull }

// Connective joins two expressions with AND/OR.
// Always parenthesized; same-connective chains are not flattened.
type Connective struct {
	Left  Expr
	Op    string
	Right Expr
}

func (c Connective) SQL() string {
	return "(" + c.Left.SQL() + " " + c.Op + " " + c.Right.SQL() + ")"
}

// And creates an AND connective.
func And(left, right Expr) Connective { return Connective{Left: left, Op: ConnAnd, Right: right} }

// Or creates an OR connective.
func Or(left, right Expr) Connective { return Connective{Left: left, Op: ConnOr, Right: right} }
