package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	tests := []struct {
		args      []string
		wantOut   string
		wantValid bool
	}{
		{args: []string{"check", "ntn", "1234567"}, wantOut: "valid\n", wantValid: true},
		{args: []string{"check", "ntn", "123456"}, wantOut: "invalid\n"},
		{args: []string{"check", "strn", "12-34-5678-901-23"}, wantOut: "valid\n", wantValid: true},
		{args: []string{"check", "cnic", "12345-6789012-3"}, wantOut: "invalid\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[1]+"/"+tt.args[2], func(t *testing.T) {
			out, err := run(tt.args...)

			assert.Equal(t, tt.wantOut, out)
			if tt.wantValid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errInvalidIdentifier)
			}
		})
	}
}

func TestCheckCmd_JSON(t *testing.T) {
	out, err := run("check", "cnic", "1234567890123", "--json")
	require.NoError(t, err)

	var result checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, checkResult{Type: "cnic", Value: "1234567890123", Valid: true}, result)
}

func TestCheckCmd_UnknownType(t *testing.T) {
	_, err := run("check", "iban", "PK36SCBL0000001123456702")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errInvalidIdentifier)
}

func TestFormatCmd(t *testing.T) {
	t.Run("currency", func(t *testing.T) {
		out, err := run("format", "currency", "1000")
		require.NoError(t, err)
		assert.Equal(t, "Rs\u00a01,000.00\n", out)
	})

	t.Run("currency rejects text", func(t *testing.T) {
		_, err := run("format", "currency", "lots")
		assert.Error(t, err)
	})

	t.Run("date", func(t *testing.T) {
		out, err := run("format", "date", "2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, "15 Jan 2024\n", out)
	})

	t.Run("invalid date", func(t *testing.T) {
		out, err := run("format", "date", "yesterday")
		require.NoError(t, err)
		assert.Equal(t, "Invalid Date\n", out)
	})

	t.Run("date as json", func(t *testing.T) {
		out, err := run("format", "date", "2024-01-15", "--json")
		require.NoError(t, err)

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "15 Jan 2024", result["formatted"])
		assert.Equal(t, "en-PK", result["locale"])
		assert.Equal(t, true, result["valid"])
	})
}
