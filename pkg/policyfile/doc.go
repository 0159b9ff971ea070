// Package policyfile reads declarative policy definitions from YAML and
// compiles them into rls.Policy builders.
//
// # Basic Usage
//
// Load and build a file in one step:
//
//	policies, err := policyfile.Load("policies.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sql, err := rls.RenderAll(policies, rls.RenderOptions{IncludeIndexes: true})
//
// Parse content already in memory:
//
//	f, err := policyfile.Parse(data)
//	policies, err := f.Build()
//
// # Format
//
//	policies:
//	  - name: documents_owner
//	    table: documents
//	    operation: select
//	    role: authenticated
//	    using:
//	      any:
//	        - {column: owner_id, op: owner}
//	        - {column: status, op: in, values: [published, archived]}
//	presets:
//	  - {kind: tenant_isolation, table: orders}
//
// A condition node is either a group (all or any, folded left with AND/OR)
// or a leaf comparison with column, op and one value source: value, raw,
// ref (auth.uid, current_user) or session ({key, type}). The in op takes
// values or subquery; contains takes values; is_null, is_not_null, owner and
// public take none.
//
// Decoding is strict: unknown keys are errors. Every error wraps
// ErrInvalidFile and names the offending path, e.g.
// "policies[1].using.any[0]: unknown op \"between\"".
package policyfile
