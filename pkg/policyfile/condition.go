package policyfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pthm/rowguard/pkg/rls"
)

// opKind groups operators by the value source they take.
type opKind int

const (
	opBinary opKind = iota
	opUnary
	opPattern
	opList
	opArray
)

type opSpec struct {
	kind  opKind
	apply func(c rls.Column, v any) rls.Comparison
}

func binary(f func(rls.Column, any) rls.Comparison) opSpec {
	return opSpec{kind: opBinary, apply: f}
}

func pattern(f func(rls.Column, string) rls.Comparison) opSpec {
	return opSpec{kind: opPattern, apply: func(c rls.Column, v any) rls.Comparison {
		return f(c, v.(string))
	}}
}

func unary(f func(rls.Column) rls.Comparison) opSpec {
	return opSpec{kind: opUnary, apply: func(c rls.Column, _ any) rls.Comparison { return f(c) }}
}

// operators maps every accepted op spelling, lower-cased, to its builder.
var operators = map[string]opSpec{
	"eq":          binary(rls.Column.Eq),
	"=":           binary(rls.Column.Eq),
	"gt":          binary(rls.Column.Gt),
	">":           binary(rls.Column.Gt),
	"gte":         binary(rls.Column.Gte),
	">=":          binary(rls.Column.Gte),
	"lt":          binary(rls.Column.Lt),
	"<":           binary(rls.Column.Lt),
	"lte":         binary(rls.Column.Lte),
	"<=":          binary(rls.Column.Lte),
	"like":        pattern(rls.Column.Like),
	"ilike":       pattern(rls.Column.Ilike),
	"in":          {kind: opList},
	"contains":    {kind: opArray},
	"@>":          {kind: opArray},
	"is_null":     unary(rls.Column.IsNull),
	"is null":     unary(rls.Column.IsNull),
	"is_not_null": unary(rls.Column.IsNotNull),
	"is not null": unary(rls.Column.IsNotNull),
	"owner":       unary(rls.Column.IsOwner),
	"public":      unary(rls.Column.IsPublic),
}

// Ref names accepted by the ref value source.
const (
	RefAuthUID     = "auth.uid"
	RefCurrentUser = "current_user"
)

func (d *CondDef) build(path string) (rls.Condition, error) {
	leaf := d.Column != "" || d.Op != ""
	forms := 0
	for _, set := range []bool{d.All != nil, d.Any != nil, leaf} {
		if set {
			forms++
		}
	}
	switch {
	case forms == 0:
		return nil, invalid(path, "condition needs all, any or column")
	case forms > 1:
		return nil, invalid(path, "condition must set exactly one of all, any or column")
	}

	switch {
	case d.All != nil:
		return buildGroup(d.All, path+".all", rls.Condition.And)
	case d.Any != nil:
		return buildGroup(d.Any, path+".any", rls.Condition.Or)
	default:
		return d.buildLeaf(path)
	}
}

// buildGroup folds the items left to right: ((a op b) op c).
func buildGroup(items []CondDef, path string, join func(rls.Condition, rls.Condition) rls.Condition) (rls.Condition, error) {
	if len(items) == 0 {
		return nil, invalid(path, "group must not be empty")
	}
	var acc rls.Condition
	for i := range items {
		cond, err := items[i].build(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = cond
			continue
		}
		acc = join(acc, cond)
	}
	return acc, nil
}

func (d *CondDef) buildLeaf(path string) (rls.Condition, error) {
	if d.Column == "" {
		return nil, invalid(path, "column is required")
	}
	opName := strings.ToLower(strings.TrimSpace(d.Op))
	if opName == "" {
		opName = "eq"
	}
	spec, ok := operators[opName]
	if !ok {
		return nil, invalid(path, "unknown op %q", d.Op)
	}
	col := rls.Column(d.Column)

	switch spec.kind {
	case opUnary:
		if d.hasScalarSource() || d.Values != nil || d.Subquery != nil {
			return nil, invalid(path, "op %q takes no value", d.Op)
		}
		return spec.apply(col, nil), nil

	case opList:
		if d.hasScalarSource() {
			return nil, invalid(path, "op in takes values or subquery")
		}
		switch {
		case d.Values != nil && d.Subquery != nil:
			return nil, invalid(path, "op in takes values or subquery, not both")
		case d.Subquery != nil:
			q, err := d.Subquery.build(path + ".subquery")
			if err != nil {
				return nil, err
			}
			return col.InSubQuery(q), nil
		case d.Values != nil:
			if err := checkScalars(d.Values, path+".values"); err != nil {
				return nil, err
			}
			return col.In(d.Values...), nil
		default:
			return nil, invalid(path, "op in needs values or subquery")
		}

	case opPattern:
		pat, ok := d.Value.(string)
		if !ok || d.Raw != "" || d.Ref != "" || d.Session != nil || d.Values != nil || d.Subquery != nil {
			return nil, invalid(path, "op %q takes a string value", d.Op)
		}
		return spec.apply(col, pat), nil

	case opArray:
		if d.hasScalarSource() || d.Subquery != nil {
			return nil, invalid(path, "op %q takes values", d.Op)
		}
		if d.Values == nil {
			return nil, invalid(path, "op %q needs values", d.Op)
		}
		if err := checkScalars(d.Values, path+".values"); err != nil {
			return nil, err
		}
		return col.Contains(d.Values...), nil
	}

	if d.Values != nil || d.Subquery != nil {
		return nil, invalid(path, "op %q takes a single value", opName)
	}
	v, err := d.scalar(path)
	if err != nil {
		return nil, err
	}
	return spec.apply(col, v), nil
}

func (d *CondDef) hasScalarSource() bool {
	return d.Value != nil || d.Raw != "" || d.Ref != "" || d.Session != nil
}

// scalar resolves the single value source of a binary comparison.
func (d *CondDef) scalar(path string) (any, error) {
	n := 0
	for _, set := range []bool{d.Value != nil, d.Raw != "", d.Ref != "", d.Session != nil} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return nil, invalid(path, "needs one of value, raw, ref or session")
	case n > 1:
		return nil, invalid(path, "set only one of value, raw, ref or session")
	}

	switch {
	case d.Raw != "":
		return rls.Raw(d.Raw), nil
	case d.Ref != "":
		switch strings.ToLower(d.Ref) {
		case RefAuthUID, RefAuthUID + "()":
			return rls.Auth.UID(), nil
		case RefCurrentUser:
			return rls.CurrentUser(), nil
		default:
			return nil, invalid(path+".ref", "unknown ref %q", d.Ref)
		}
	case d.Session != nil:
		if d.Session.Key == "" {
			return nil, invalid(path+".session", "key is required")
		}
		typ := d.Session.Type
		if typ == "" {
			typ = "text"
		}
		return rls.Session.Get(d.Session.Key, typ), nil
	default:
		if !isScalar(d.Value) {
			return nil, invalid(path+".value", "value must be a scalar, got %T", d.Value)
		}
		return d.Value, nil
	}
}

// isScalar reports whether a decoded YAML value is a string, number, bool
// or null.
func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, json.Number, float64:
		return true
	}
	return false
}

func checkScalars(values []any, path string) error {
	for i, v := range values {
		if !isScalar(v) {
			return invalid(fmt.Sprintf("%s[%d]", path, i), "value must be a scalar, got %T", v)
		}
	}
	return nil
}

func (d *SubQueryDef) build(path string) (*rls.SubQuery, error) {
	if d.From == "" {
		return nil, invalid(path, "from is required")
	}
	q := rls.From(d.From, d.Alias).Select(d.Select...)
	for i, j := range d.Joins {
		jpath := fmt.Sprintf("%s.joins[%d]", path, i)
		if j.Table == "" {
			return nil, invalid(jpath, "table is required")
		}
		kind := rls.JoinKind(strings.ToLower(j.Kind))
		switch kind {
		case "", rls.JoinInner, rls.JoinLeft, rls.JoinRight, rls.JoinFull:
		default:
			return nil, invalid(jpath+".kind", "unknown join kind %q", j.Kind)
		}
		var on rls.Condition
		if j.On != nil {
			var err error
			if on, err = j.On.build(jpath + ".on"); err != nil {
				return nil, err
			}
		}
		q.JoinAs(j.Table, on, kind, j.Alias)
	}
	if d.Where != nil {
		where, err := d.Where.build(path + ".where")
		if err != nil {
			return nil, err
		}
		q.Where(where)
	}
	return q, nil
}
