package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/rowguard/pkg/rls"
)

func render(t *testing.T, p *rls.Policy) string {
	t.Helper()
	sql, err := p.SQL()
	require.NoError(t, err)
	return sql
}

func TestUserOwned(t *testing.T) {
	got := UserOwned("notes", "")
	require.Len(t, got, 1)
	assert.Equal(t, "notes_user_owned", got[0].Name())
	assert.Equal(t,
		"CREATE POLICY \"notes_user_owned\"\n  ON notes\n  AS PERMISSIVE\n  FOR SELECT\n  USING (user_id = auth.uid());",
		render(t, got[0]),
	)

	all := UserOwned("notes", rls.OpAll)
	assert.Equal(t, rls.OpAll, all[0].Operation())
}

func TestTenantIsolation(t *testing.T) {
	assert.Equal(t,
		"CREATE POLICY \"orders_tenant_isolation\"\n  ON orders\n  AS RESTRICTIVE\n  FOR ALL\n"+
			"  USING (tenant_id = current_setting('app.current_tenant_id', true)::integer);",
		render(t, TenantIsolation("orders", "", "")),
	)

	custom := render(t, TenantIsolation("orders", "org_id", "app.org_id"))
	assert.Contains(t, custom, "USING (org_id = current_setting('app.org_id', true)::integer)")
}

func TestPublicAccess(t *testing.T) {
	assert.Equal(t,
		"CREATE POLICY \"posts_public_access\"\n  ON posts\n  AS PERMISSIVE\n  FOR SELECT\n  USING (is_public = true);",
		render(t, PublicAccess("posts", "")),
	)
	assert.Contains(t, render(t, PublicAccess("posts", "visible")), "USING (visible = true)")
}

func TestRoleAccess(t *testing.T) {
	assert.Equal(t,
		"CREATE POLICY \"reports_analyst_access\"\n  ON reports\n  AS PERMISSIVE\n  FOR SELECT\n  TO analyst;",
		render(t, RoleAccess("reports", "analyst", "")),
	)
	p := RoleAccess("reports", "admin", rls.OpDelete)
	assert.Equal(t, rls.OpDelete, p.Operation())
	assert.Equal(t, "admin", p.Role())
}

func TestPresets_IndexSuggestions(t *testing.T) {
	sql, err := TenantIsolation("orders", "", "").SQLWithOptions(rls.RenderOptions{IncludeIndexes: true})
	require.NoError(t, err)
	assert.Contains(t, sql, "\n\nCREATE INDEX IF NOT EXISTS idx_orders_tenant_id ON orders (tenant_id);")
}
