package rls

import (
	"fmt"
	"strings"

	"github.com/pthm/rowguard/internal/sqlgen/sqldsl"
)

// Operation is the command a policy applies to.
type Operation string

// Policy operations.
const (
	OpSelect Operation = "SELECT"
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
	OpAll    Operation = "ALL"
)

// Operations lists every supported operation.
var Operations = []Operation{OpSelect, OpInsert, OpUpdate, OpDelete, OpAll}

// ParseOperation converts a case-insensitive name into an Operation.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Operations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("rls: unknown operation %q", s)
}

// RenderOptions controls Policy.SQLWithOptions.
type RenderOptions struct {
	// IncludeIndexes appends CREATE INDEX IF NOT EXISTS suggestions for the
	// columns the policy conditions compare.
	IncludeIndexes bool

	// Extractor finds the indexable columns. Nil uses PatternExtractor.
	Extractor ColumnExtractor
}

// Policy is a mutable builder for a CREATE POLICY statement. Each method sets
// one field and returns the receiver.
//
//	rls.CreatePolicy("documents_owner").
//	    On("documents").
//	    For(rls.OpSelect).
//	    When(rls.Column("owner_id").IsOwner())
type Policy struct {
	name        string
	table       string
	operation   Operation
	role        string
	using       Condition
	check       Condition
	restrictive bool
	description string
}

// CreatePolicy starts a policy. The name is used verbatim as the quoted
// policy identifier.
func CreatePolicy(name string) *Policy {
	return &Policy{name: name}
}

// On sets the table.
func (p *Policy) On(table string) *Policy {
	p.table = table
	return p
}

// For sets the operation.
func (p *Policy) For(op Operation) *Policy {
	p.operation = op
	return p
}

// To sets the target role.
func (p *Policy) To(role string) *Policy {
	p.role = role
	return p
}

// When sets the USING condition. The last call to When or Allow wins.
func (p *Policy) When(cond Condition) *Policy {
	p.using = cond
	return p
}

// Allow is a synonym for When.
func (p *Policy) Allow(cond Condition) *Policy {
	return p.When(cond)
}

// WithCheck sets the WITH CHECK condition.
func (p *Policy) WithCheck(cond Condition) *Policy {
	p.check = cond
	return p
}

// Restrictive marks the policy AS RESTRICTIVE. Policies are permissive
// unless this is called.
func (p *Policy) Restrictive() *Policy {
	p.restrictive = true
	return p
}

// Description sets the comment rendered above the statement.
func (p *Policy) Description(text string) *Policy {
	p.description = text
	return p
}

// Name returns the policy name.
func (p *Policy) Name() string { return p.name }

// Table returns the table, empty if unset.
func (p *Policy) Table() string { return p.table }

// Operation returns the operation, empty if unset.
func (p *Policy) Operation() Operation { return p.operation }

// Role returns the target role, empty if unset.
func (p *Policy) Role() string { return p.role }

// Using returns the USING condition, nil if unset.
func (p *Policy) Using() Condition { return p.using }

// Check returns the WITH CHECK condition, nil if unset.
func (p *Policy) Check() Condition { return p.check }

// IsRestrictive reports whether the policy is restrictive.
func (p *Policy) IsRestrictive() bool { return p.restrictive }

// DescriptionText returns the description, empty if unset.
func (p *Policy) DescriptionText() string { return p.description }

// Validate reports a *ConfigError if the table or operation is missing.
func (p *Policy) Validate() error {
	var missing []string
	if p.table == "" {
		missing = append(missing, "table")
	}
	if p.operation == "" {
		missing = append(missing, "operation")
	}
	if len(missing) > 0 {
		return &ConfigError{Policy: p.name, Missing: missing}
	}
	return nil
}

// SQL renders the CREATE POLICY statement without index suggestions.
func (p *Policy) SQL() (string, error) {
	return p.SQLWithOptions(RenderOptions{})
}

// SQLWithOptions renders the CREATE POLICY statement. With IncludeIndexes,
// a blank line and one CREATE INDEX IF NOT EXISTS statement per distinct
// compared column follow it.
func (p *Policy) SQLWithOptions(opts RenderOptions) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	stmt := sqldsl.CreatePolicyStmt{
		Comment:     p.description,
		Name:        p.name,
		Table:       p.table,
		Restrictive: p.restrictive,
		Command:     string(p.operation),
		Role:        p.role,
		Using:       p.using,
		WithCheck:   p.check,
	}

	script := sqldsl.Script{stmt}
	if opts.IncludeIndexes {
		if indexes := p.indexes(opts.Extractor); len(indexes) > 0 {
			script = append(script, indexes)
		}
	}
	return script.SQL(), nil
}

// DropSQL renders DROP POLICY IF EXISTS for the policy.
func (p *Policy) DropSQL() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return sqldsl.DropPolicyStmt{Name: p.name, Table: p.table}.SQL(), nil
}

// indexes builds one index statement per distinct column, USING first.
func (p *Policy) indexes(extractor ColumnExtractor) sqldsl.Lines {
	if extractor == nil {
		extractor = PatternExtractor{}
	}

	var stmts sqldsl.Lines
	seen := make(map[string]bool)
	for _, cond := range []Condition{p.using, p.check} {
		if cond == nil {
			continue
		}
		for _, col := range extractor.ExtractColumns(cond) {
			if col == "" || seen[col] {
				continue
			}
			seen[col] = true
			stmts = append(stmts, sqldsl.CreateIndexStmt{
				Name:        sqldsl.IndexName(p.table, col),
				Table:       p.table,
				Columns:     []string{col},
				IfNotExists: true,
			})
		}
	}
	return stmts
}

// RenderAll renders policies in order, separated by blank lines. It stops at
// the first policy that fails validation.
func RenderAll(policies []*Policy, opts RenderOptions) (string, error) {
	parts := make([]string, 0, len(policies))
	for _, p := range policies {
		sql, err := p.SQLWithOptions(opts)
		if err != nil {
			return "", err
		}
		parts = append(parts, sql)
	}
	return strings.Join(parts, "\n\n"), nil
}
