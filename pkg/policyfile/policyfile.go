package policyfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/pthm/rowguard/pkg/rls"
)

// ErrInvalidFile is returned (wrapped) when a policy file cannot be decoded
// or describes an invalid policy.
var ErrInvalidFile = errors.New("invalid policy file")

// IsInvalidFileErr reports whether err is or wraps ErrInvalidFile.
func IsInvalidFileErr(err error) bool {
	return errors.Is(err, ErrInvalidFile)
}

// invalid wraps ErrInvalidFile with the path of the offending node.
func invalid(path, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if path == "" {
		return fmt.Errorf("%w: %s", ErrInvalidFile, msg)
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidFile, path, msg)
}

// ParseFile reads and decodes the policy file at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes policy file content. Unknown keys are rejected. Numbers are
// kept as json.Number so large integers render exactly.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f, useNumber); err != nil {
		return nil, invalid("", "%v", err)
	}
	return &f, nil
}

func useNumber(d *json.Decoder) *json.Decoder {
	d.UseNumber()
	return d
}

// ParseString is Parse for string content.
func ParseString(content string) (*File, error) {
	return Parse([]byte(content))
}

// Load parses the file at path and builds its policies.
func Load(path string) ([]*rls.Policy, error) {
	f, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	policies, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return policies, nil
}
