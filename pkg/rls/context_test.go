package rls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextHelpers(t *testing.T) {
	assert.Equal(t, Raw("auth.uid()"), Auth.UID())
	assert.Equal(t, Raw("current_user"), CurrentUser())
	assert.Equal(t, Raw("current_setting('app.current_tenant_id', true)::integer"), Session.Get("app.current_tenant_id", "integer"))
	assert.Equal(t, Raw("current_setting('app.org''s', true)::uuid"), Session.Get("app.org's", "uuid"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "'a''b'", Format("a'b"))
	assert.Equal(t, "auth.uid()", Format(Auth.UID()))
	assert.Equal(t, "true", Format(true))
	assert.Equal(t, "12", Format(12))
	assert.Equal(t, "NULL", Format(nil))
}
