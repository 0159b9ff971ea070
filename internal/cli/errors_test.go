package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", cause, ExitGeneral},
		{"config", ConfigError("loading configuration", cause), ExitConfig},
		{"policy file", PolicyFileError("building policies", cause), ExitPolicyFile},
		{"wrapped", fmt.Errorf("outer: %w", PolicyFileError("x", cause)), ExitPolicyFile},
		{"general", GeneralError("writing output", cause), ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("boom")
	err := PolicyFileError("building policies", cause)
	assert.Equal(t, "building policies: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "no cause", GeneralError("no cause", nil).Error())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, ConfigError("loading configuration", errors.New("bad")))
	assert.Equal(t, "Error: loading configuration: bad\n", buf.String())
}
