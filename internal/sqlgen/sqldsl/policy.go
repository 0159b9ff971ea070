package sqldsl

import "strings"

// CreatePolicyStmt represents a PostgreSQL CREATE POLICY statement.
//
// Renders:
//
//	-- comment
//	CREATE POLICY "name"
//	  ON table
//	  AS PERMISSIVE
//	  FOR SELECT
//	  TO role
//	  USING (using)
//	  WITH CHECK (check);
//
// The comment, TO, USING and WITH CHECK lines are omitted when empty. Each
// line of a multi-line comment gets its own "-- " prefix.
// The name is quoted but not escaped.
type CreatePolicyStmt struct {
	Comment     string
	Name        string
	Table       string
	Restrictive bool
	Command     string
	Role        string
	Using       Expr
	WithCheck   Expr
}

// SQL renders the CREATE POLICY statement.
func (c CreatePolicyStmt) SQL() string {
	var lines []string
	if c.Comment != "" {
		comment := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(c.Comment)
		for _, line := range strings.Split(comment, "\n") {
			lines = append(lines, strings.TrimRight("-- "+line, " "))
		}
	}
	lines = append(lines,
		`CREATE POLICY "`+c.Name+`"`,
		clause("ON "+c.Table),
		clause("AS "+c.mode()),
		clause("FOR "+c.Command),
	)
	if c.Role != "" {
		lines = append(lines, clause("TO "+c.Role))
	}
	if c.Using != nil {
		lines = append(lines, clause("USING "+Paren{Expr: c.Using}.SQL()))
	}
	if c.WithCheck != nil {
		lines = append(lines, clause("WITH CHECK "+Paren{Expr: c.WithCheck}.SQL()))
	}
	return strings.Join(lines, "\n") + ";"
}

func (c CreatePolicyStmt) mode() string {
	if c.Restrictive {
		return "RESTRICTIVE"
	}
	return "PERMISSIVE"
}

// clause indents one clause line. Condition text is appended as is, so
// literals spanning lines keep their content.
func clause(s string) string {
	return "  " + s
}

// DropPolicyStmt represents DROP POLICY IF EXISTS "name" ON table.
type DropPolicyStmt struct {
	Name  string
	Table string
}

// SQL renders the DROP POLICY statement.
func (d DropPolicyStmt) SQL() string {
	return `DROP POLICY IF EXISTS "` + d.Name + `" ON ` + d.Table + ";"
}

// CreateIndexStmt represents CREATE INDEX [IF NOT EXISTS] name ON table (columns).
type CreateIndexStmt struct {
	Name        string
	Table       string
	Columns     []string
	IfNotExists bool
}

// SQL renders the CREATE INDEX statement.
func (c CreateIndexStmt) SQL() string {
	return "CREATE INDEX " + Optf(c.IfNotExists, "IF NOT EXISTS ") +
		c.Name + " ON " + c.Table + " (" + strings.Join(c.Columns, ", ") + ");"
}

// IndexName builds the conventional idx_<table>_<columns> name.
func IndexName(table string, columns ...string) string {
	return "idx_" + table + "_" + strings.Join(columns, "_")
}

// Lines renders statements separated by a single newline.
type Lines []SQLer

// SQL renders the statements.
func (l Lines) SQL() string {
	parts := make([]string, len(l))
	for i, stmt := range l {
		parts[i] = stmt.SQL()
	}
	return strings.Join(parts, "\n")
}
