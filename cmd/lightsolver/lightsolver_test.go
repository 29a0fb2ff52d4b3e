package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ricrob/lightsolver/lights"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSolveStdin(t *testing.T) {
	tests := []struct {
		stdin string
		want  string
	}{
		{"1101\n0100\n", "2\n"},
		{"101010\n010101\n", "26\n"},
		{"11001001000\n10000110011", "877\n"},
		{"0\r\n0\r\n", "0\n"},
		{"01\n010\n", "no solution found\n"},
	}

	for _, test := range tests {
		out, _, err := run(t, test.stdin)
		require.NoError(t, err, "stdin %q", test.stdin)
		assert.Equal(t, test.want, out, "stdin %q", test.stdin)
	}
}

func TestSolveArgs(t *testing.T) {
	out, _, err := run(t, "", "1101", "0100")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, _, err = run(t, "", "1101")
	assert.Error(t, err)
}

func TestLimit(t *testing.T) {
	out, _, err := run(t, "", "--limit", "10", "101010", "010101")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, _, err = run(t, "", "--no-limit", "11001001000", "10000110011")
	require.NoError(t, err)
	assert.Equal(t, "877\n", out)

	// the default limit cuts long solves
	out, _, err = run(t, "", "0000000000000", "1000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1000\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightsolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limit: 5\nlog_level: error\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "101010", "010101")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	// flags override the file
	out, _, err = run(t, "", "--config", path, "--limit", "7", "101010", "010101")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "0", "1")
	assert.Error(t, err)
}

func TestTrace(t *testing.T) {
	out, errOut, err := run(t, "", "--trace", "1101", "0100")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
	assert.Equal(t, "    0 1101\n    1 1100 (flip 3)\n    2 0100 (flip 0)\n", errOut)
}

func TestParseErrors(t *testing.T) {
	_, _, err := run(t, "\n0100\n")
	assert.ErrorIs(t, err, errParse)
	assert.ErrorIs(t, err, lights.ErrNoLight)
	assert.EqualError(t, err, "cannot parse input due to not enough lights to process")

	_, _, err = run(t, "", "0", strings.Repeat("1", lights.MaxLights+1))
	assert.ErrorIs(t, err, lights.ErrTooManyLights)

	_, _, err = run(t, "0101\n")
	assert.Error(t, err)
}
