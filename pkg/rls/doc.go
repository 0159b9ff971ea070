// Package rls builds PostgreSQL row-level-security policies from composable
// Go values and renders them to SQL text.
//
// # Conditions
//
// A predicate starts from a Column and a comparison method. Comparisons can
// be chained with And/Or; each call wraps everything built so far as the
// left operand and the result is always parenthesized:
//
//	rls.Column("a").Eq(1).And(rls.Column("b").Eq(2)).Or(rls.Column("c").Eq(3))
//	// ((a = 1 AND b = 2) OR c = 3)
//
// Conditions are immutable values and may be shared between policies.
//
// # Values
//
// Comparison values are Go scalars. Strings are always quoted as literals.
// Values that are already SQL, such as Auth.UID(), Session.Get(...) or
// CurrentUser(), are of type Raw and pass through unquoted. A Column used as
// a value renders as a bare identifier.
//
// # Sub-queries
//
//	rls.Column("team_id").InSubQuery(
//	    rls.From("memberships", "m").
//	        Select("m.team_id").
//	        Where(rls.Column("m.user_id").IsOwner()),
//	)
//	// team_id IN (SELECT m.team_id FROM memberships m WHERE m.user_id = auth.uid())
//
// # Policies
//
//	sql, err := rls.CreatePolicy("documents_owner").
//	    On("documents").
//	    For(rls.OpSelect).
//	    To("authenticated").
//	    When(rls.Column("owner_id").IsOwner()).
//	    SQLWithOptions(rls.RenderOptions{IncludeIndexes: true})
//
// Rendering fails with a *ConfigError (wrapping ErrIncompletePolicy) when the
// table or operation is missing. Nothing else is validated: identifiers,
// operators and values are emitted as given and checked by the database.
//
// # Index suggestions
//
// With IncludeIndexes, the renderer appends CREATE INDEX IF NOT EXISTS
// statements for the compared columns. Columns are found by a
// ColumnExtractor; the default PatternExtractor scans the rendered condition
// text and is a heuristic. ComparisonExtractor walks the condition tree
// instead.
package rls
