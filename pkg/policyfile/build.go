package policyfile

import (
	"fmt"
	"strings"

	"github.com/pthm/rowguard/pkg/policies"
	"github.com/pthm/rowguard/pkg/rls"
)

// Build compiles the file into policy builders: explicit policies first, in
// file order, then preset expansions in file order.
func (f *File) Build() ([]*rls.Policy, error) {
	var out []*rls.Policy
	for i, def := range f.Policies {
		p, err := def.build(fmt.Sprintf("policies[%d]", i))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	for i, def := range f.Presets {
		ps, err := def.build(fmt.Sprintf("presets[%d]", i))
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}
	return out, nil
}

func (d PolicyDef) build(path string) (*rls.Policy, error) {
	if d.Name == "" {
		return nil, invalid(path, "name is required")
	}
	p := rls.CreatePolicy(d.Name).On(d.Table).To(d.Role).Description(d.Description)
	if d.Operation != "" {
		op, err := rls.ParseOperation(d.Operation)
		if err != nil {
			return nil, invalid(path+".operation", "unknown operation %q", d.Operation)
		}
		p.For(op)
	}
	if d.Restrictive {
		p.Restrictive()
	}
	if d.Using != nil {
		cond, err := d.Using.build(path + ".using")
		if err != nil {
			return nil, err
		}
		p.When(cond)
	}
	if d.WithCheck != nil {
		cond, err := d.WithCheck.build(path + ".with_check")
		if err != nil {
			return nil, err
		}
		p.WithCheck(cond)
	}
	return p, nil
}

func (d PresetDef) build(path string) ([]*rls.Policy, error) {
	if d.Table == "" {
		return nil, invalid(path, "table is required")
	}
	var op rls.Operation
	if d.Operation != "" {
		var err error
		if op, err = rls.ParseOperation(d.Operation); err != nil {
			return nil, invalid(path+".operation", "unknown operation %q", d.Operation)
		}
	}

	switch strings.ToLower(d.Kind) {
	case KindUserOwned:
		return policies.UserOwned(d.Table, op), nil
	case KindTenantIsolation:
		return []*rls.Policy{policies.TenantIsolation(d.Table, d.Column, d.SessionKey)}, nil
	case KindPublicAccess:
		return []*rls.Policy{policies.PublicAccess(d.Table, d.Column)}, nil
	case KindRoleAccess:
		if d.Role == "" {
			return nil, invalid(path, "role is required for %s", KindRoleAccess)
		}
		return []*rls.Policy{policies.RoleAccess(d.Table, d.Role, op)}, nil
	case "":
		return nil, invalid(path, "kind is required")
	default:
		return nil, invalid(path+".kind", "unknown preset %q", d.Kind)
	}
}
