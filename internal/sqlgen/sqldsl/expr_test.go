package sqldsl

import "testing"

func TestExpr_SQL(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"column", Col{Column: "owner_id"}, "owner_id"},
		{"qualified column", Col{Table: "m", Column: "user_id"}, "m.user_id"},
		{"literal", Lit("document"), "'document'"},
		{"literal with quote", Lit("o'brien"), "'o''brien'"},
		{"literal with only quotes", Lit("''"), "''''''"},
		{"raw", Raw("auth.uid()"), "auth.uid()"},
		{"int", Int(-42), "-42"},
		{"uint", Uint(18446744073709551615), "18446744073709551615"},
		{"float", Float(3.25), "3.25"},
		{"whole float", Float(1), "1"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"null", Null{}, "NULL"},
		{"func no args", Func{Name: "now"}, "now()"},
		{"func with args", Func{Name: "current_setting", Args: []Expr{Lit("app.tenant"), Bool(true)}}, "current_setting('app.tenant', true)"},
		{"cast", Cast{Expr: Func{Name: "current_setting", Args: []Expr{Lit("k"), Bool(true)}}, Type: "integer"}, "current_setting('k', true)::integer"},
		{"paren", Paren{Expr: Raw("a = 1")}, "(a = 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.SQL(); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}
