package rls

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompletePolicy is returned when a policy is rendered before both its
// table and operation are set.
var ErrIncompletePolicy = errors.New("rls: table and operation are required")

// ConfigError reports which required policy fields are missing.
type ConfigError struct {
	Policy  string   // Policy name
	Missing []string // "table", "operation"
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: policy %q is missing %s",
		ErrIncompletePolicy.Error(), e.Policy, strings.Join(e.Missing, " and "))
}

// Unwrap returns ErrIncompletePolicy for errors.Is.
func (e *ConfigError) Unwrap() error {
	return ErrIncompletePolicy
}

// IsIncompletePolicyErr returns true if err is or wraps ErrIncompletePolicy.
func IsIncompletePolicyErr(err error) bool {
	return errors.Is(err, ErrIncompletePolicy)
}
