package sqldsl

import "testing"

func TestCreatePolicyStmt_SQL(t *testing.T) {
	tests := []struct {
		name string
		stmt CreatePolicyStmt
		want string
	}{
		{
			name: "minimal",
			stmt: CreatePolicyStmt{Name: "p", Table: "t", Command: "SELECT"},
			want: "CREATE POLICY \"p\"\n  ON t\n  AS PERMISSIVE\n  FOR SELECT;",
		},
		{
			name: "all clauses",
			stmt: CreatePolicyStmt{
				Comment:     "owners only",
				Name:        "docs_owner",
				Table:       "documents",
				Restrictive: true,
				Command:     "UPDATE",
				Role:        "authenticated",
				Using:       Eq(Col{Column: "owner_id"}, Raw("auth.uid()")),
				WithCheck:   Eq(Col{Column: "owner_id"}, Raw("auth.uid()")),
			},
			want: "-- owners only\n" +
				"CREATE POLICY \"docs_owner\"\n" +
				"  ON documents\n" +
				"  AS RESTRICTIVE\n" +
				"  FOR UPDATE\n" +
				"  TO authenticated\n" +
				"  USING (owner_id = auth.uid())\n" +
				"  WITH CHECK (owner_id = auth.uid());",
		},
		{
			name: "multi-line comment",
			stmt: CreatePolicyStmt{Comment: "first\n\nthird\r\nfourth", Name: "p", Table: "t", Command: "ALL"},
			want: "-- first\n--\n-- third\n-- fourth\n" +
				"CREATE POLICY \"p\"\n  ON t\n  AS PERMISSIVE\n  FOR ALL;",
		},
		{
			name: "multi-line literal kept intact",
			stmt: CreatePolicyStmt{
				Name:      "notes",
				Table:     "t",
				Command:   "SELECT",
				Using:     Eq(Col{Column: "note"}, Lit("line1\nline2")),
				WithCheck: Raw("a = 1\nOR b = 2"),
			},
			want: "CREATE POLICY \"notes\"\n  ON t\n  AS PERMISSIVE\n  FOR SELECT\n" +
				"  USING (note = 'line1\nline2')\n" +
				"  WITH CHECK (a = 1\nOR b = 2);",
		},
		{
			name: "check only",
			stmt: CreatePolicyStmt{Name: "ins", Table: "t", Command: "INSERT", WithCheck: Raw("true")},
			want: "CREATE POLICY \"ins\"\n  ON t\n  AS PERMISSIVE\n  FOR INSERT\n  WITH CHECK (true);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.SQL(); got != tt.want {
				t.Errorf("CreatePolicyStmt.SQL() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestDropPolicyStmt_SQL(t *testing.T) {
	got := DropPolicyStmt{Name: "p", Table: "public.t"}.SQL()
	want := `DROP POLICY IF EXISTS "p" ON public.t;`
	if got != want {
		t.Errorf("DropPolicyStmt.SQL() = %q, want %q", got, want)
	}
}

func TestCreateIndexStmt_SQL(t *testing.T) {
	tests := []struct {
		name string
		stmt CreateIndexStmt
		want string
	}{
		{
			name: "if not exists",
			stmt: CreateIndexStmt{Name: IndexName("t", "owner"), Table: "t", Columns: []string{"owner"}, IfNotExists: true},
			want: "CREATE INDEX IF NOT EXISTS idx_t_owner ON t (owner);",
		},
		{
			name: "plain multi column",
			stmt: CreateIndexStmt{Name: IndexName("t", "a", "b"), Table: "t", Columns: []string{"a", "b"}},
			want: "CREATE INDEX idx_t_a_b ON t (a, b);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.SQL(); got != tt.want {
				t.Errorf("CreateIndexStmt.SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLines_SQL(t *testing.T) {
	got := Lines{Raw("a;"), Raw("b;")}.SQL()
	if got != "a;\nb;" {
		t.Errorf("Lines.SQL() = %q", got)
	}
}
