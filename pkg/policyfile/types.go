package policyfile

// File is the top-level policy document.
type File struct {
	Policies []PolicyDef `json:"policies,omitempty"`
	Presets  []PresetDef `json:"presets,omitempty"`
}

// PolicyDef describes one CREATE POLICY statement.
type PolicyDef struct {
	Name        string   `json:"name"`
	Table       string   `json:"table"`
	Operation   string   `json:"operation"`
	Role        string   `json:"role,omitempty"`
	Restrictive bool     `json:"restrictive,omitempty"`
	Description string   `json:"description,omitempty"`
	Using       *CondDef `json:"using,omitempty"`
	WithCheck   *CondDef `json:"with_check,omitempty"`
}

// CondDef is a condition node: a group (All or Any) or a leaf comparison.
type CondDef struct {
	All []CondDef `json:"all,omitempty"`
	Any []CondDef `json:"any,omitempty"`

	Column   string       `json:"column,omitempty"`
	Op       string       `json:"op,omitempty"`
	Value    any          `json:"value,omitempty"`
	Values   []any        `json:"values,omitempty"`
	Raw      string       `json:"raw,omitempty"`
	Ref      string       `json:"ref,omitempty"`
	Session  *SessionRef  `json:"session,omitempty"`
	Subquery *SubQueryDef `json:"subquery,omitempty"`
}

// SessionRef reads a session setting: current_setting('<key>', true)::<type>.
type SessionRef struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

// SubQueryDef describes the SELECT on the right of an in comparison.
type SubQueryDef struct {
	From   string    `json:"from"`
	Alias  string    `json:"alias,omitempty"`
	Select []string  `json:"select,omitempty"`
	Joins  []JoinDef `json:"joins,omitempty"`
	Where  *CondDef  `json:"where,omitempty"`
}

// JoinDef describes one sub-query join.
type JoinDef struct {
	Table string   `json:"table"`
	Alias string   `json:"alias,omitempty"`
	Kind  string   `json:"kind,omitempty"`
	On    *CondDef `json:"on,omitempty"`
}

// Preset kinds.
const (
	KindUserOwned       = "user_owned"
	KindTenantIsolation = "tenant_isolation"
	KindPublicAccess    = "public_access"
	KindRoleAccess      = "role_access"
)

// PresetDef invokes one of the factories in package policies.
type PresetDef struct {
	Kind       string `json:"kind"`
	Table      string `json:"table"`
	Operation  string `json:"operation,omitempty"`
	Role       string `json:"role,omitempty"`
	Column     string `json:"column,omitempty"`
	SessionKey string `json:"session_key,omitempty"`
}
