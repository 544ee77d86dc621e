package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Message(t *testing.T) {
	err := NewExitError(ExitFailure, "2 assertion(s) failed")
	assert.Equal(t, "2 assertion(s) failed", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestExitError_Wrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapExitError(ExitCommandError, "failed to record run", cause)

	assert.Equal(t, "failed to record run: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"failure", NewExitError(ExitFailure, "failed"), ExitFailure},
		{"command error", NewExitError(ExitCommandError, "bad"), ExitCommandError},
		{"wrapped", fmt.Errorf("outer: %w", NewExitError(ExitFailure, "failed")), ExitFailure},
		{"plain error", errors.New("unknown flag"), ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestWriteJSON_Envelope(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeJSON(buf, map[string]string{"name": "<simple>"}))

	var resp struct {
		Status string            `json:"status"`
		Data   map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "<simple>", resp.Data["name"])
	assert.Contains(t, buf.String(), "<simple>", "HTML escaping is off")
}
