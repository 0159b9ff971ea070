// Package sqldsl provides the typed SQL building blocks behind rowguard's
// policy builder.
//
// # Overview
//
// Rather than constructing SQL strings through concatenation, this package
// provides small value types that render PostgreSQL syntax through a SQL()
// method. The public builder in pkg/rls assembles them; this package knows
// nothing about policies beyond how to print them.
//
// # Expression Types
//
// Basic expressions:
//
//	Col{Column: "owner_id"}           // Column reference: owner_id
//	Lit("o'brien")                    // String literal: 'o''brien'
//	Int(42)                           // Integer literal: 42
//	Bool(true)                        // Boolean literal: true
//	Null{}                            // NULL literal
//	Raw("auth.uid()")                 // Raw SQL (emitted unescaped)
//	Cast{Expr: e, Type: "integer"}    // e::integer
//
// Value converts an arbitrary Go scalar into one of the above, so callers
// can accept `any` and still get correct quoting. Strings always become Lit;
// only Raw is passed through verbatim.
//
// Operators:
//
//	BinaryOp{Left: col, Op: OpGt, Right: Int(1)}  // col > 1
//	In{Expr: col, Values: []Expr{...}}            // col IN (a, b)
//	InQuery{Expr: col, Query: stmt}               // col IN (SELECT ...)
//	Contains{Expr: col, Values: []Expr{...}}      // col @> ARRAY[a, b]
//	And(l, r) / Or(l, r)                          // (l AND r)
//
// # Statement Types
//
//	SelectStmt{Columns: []string{"id"}, FromExpr: TableRef{Name: "t"}}
//	CreatePolicyStmt{Name: "p", Table: "t", Command: "SELECT", Using: cond}
//	CreateIndexStmt{Name: "idx_t_owner", Table: "t", Columns: []string{"owner"}}
//	DropPolicyStmt{Name: "p", Table: "t"}
//
// Identifiers are trusted input and are never quoted or escaped.
package sqldsl
