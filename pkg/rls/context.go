package rls

import (
	"github.com/pthm/rowguard/internal/sqlgen/sqldsl"
)

// Raw is an already valid SQL fragment. Values of this type are emitted
// without quoting; plain strings are always quoted as literals.
type Raw = sqldsl.Raw

// AuthContext emits references to the authenticated request user.
type AuthContext struct{}

// Auth is the authentication context helper: rls.Auth.UID().
var Auth AuthContext

// UID returns the current authenticated user id, auth.uid().
func (AuthContext) UID() Raw {
	return Raw(sqldsl.Func{Name: "auth.uid"}.SQL())
}

// SessionContext emits references to session configuration values.
type SessionContext struct{}

// Session is the session configuration helper: rls.Session.Get(key, type).
var Session SessionContext

// Get returns current_setting('<key>', true)::<typ>. The key is quoted as a
// string literal; typ is emitted verbatim.
func (SessionContext) Get(key, typ string) Raw {
	setting := sqldsl.Func{
		Name: "current_setting",
		Args: []sqldsl.Expr{sqldsl.Lit(key), sqldsl.Bool(true)},
	}
	return Raw(sqldsl.Cast{Expr: setting, Type: typ}.SQL())
}

// CurrentUser returns the database session user, current_user.
func CurrentUser() Raw {
	return Raw("current_user")
}

// Format renders a Go scalar as SQL literal text using the same rules as
// comparison values: Raw passes through, strings are quoted with embedded
// quotes doubled, booleans render true/false, numbers render in decimal and
// nil renders NULL.
func Format(v any) string {
	return sqldsl.Format(v)
}
