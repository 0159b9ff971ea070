// Package policies provides factories for common row-level-security shapes
// built on package rls.
package policies

import (
	"github.com/pthm/rowguard/pkg/rls"
)

// Defaults used when the corresponding argument is empty.
const (
	DefaultOwnerColumn      = "user_id"
	DefaultTenantColumn     = "tenant_id"
	DefaultTenantSessionKey = "app.current_tenant_id"
	DefaultTenantType       = "integer"
	DefaultVisibilityColumn = "is_public"
)

// UserOwned returns a policy letting users reach rows whose user_id matches
// auth.uid(). An empty op means SELECT.
//
//	CREATE POLICY "<table>_user_owned" ON <table> FOR <op> USING (user_id = auth.uid())
func UserOwned(table string, op rls.Operation) []*rls.Policy {
	return []*rls.Policy{
		rls.CreatePolicy(table + "_user_owned").
			On(table).
			For(orSelect(op)).
			When(rls.Column(DefaultOwnerColumn).Eq(rls.Auth.UID())),
	}
}

// TenantIsolation returns a restrictive policy confining every operation to
// rows whose tenant column equals the integer session setting. Empty
// arguments fall back to tenant_id and app.current_tenant_id.
func TenantIsolation(table, column, sessionKey string) *rls.Policy {
	if column == "" {
		column = DefaultTenantColumn
	}
	if sessionKey == "" {
		sessionKey = DefaultTenantSessionKey
	}
	return rls.CreatePolicy(table + "_tenant_isolation").
		On(table).
		For(rls.OpAll).
		Restrictive().
		When(rls.Column(column).Eq(rls.Session.Get(sessionKey, DefaultTenantType)))
}

// PublicAccess returns a SELECT policy for rows flagged public. An empty
// column means is_public.
func PublicAccess(table, column string) *rls.Policy {
	if column == "" {
		column = DefaultVisibilityColumn
	}
	return rls.CreatePolicy(table + "_public_access").
		On(table).
		For(rls.OpSelect).
		When(rls.Column(column).Eq(true))
}

// RoleAccess returns an unconditional policy granting role the operation.
// An empty op means SELECT.
func RoleAccess(table, role string, op rls.Operation) *rls.Policy {
	return rls.CreatePolicy(table + "_" + role + "_access").
		On(table).
		For(orSelect(op)).
		To(role)
}

func orSelect(op rls.Operation) rls.Operation {
	if op == "" {
		return rls.OpSelect
	}
	return op
}
