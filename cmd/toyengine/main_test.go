package main

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Setenv("TOYENGINE_LOG_LEVEL", "error")
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	assert.NilError(t, err)
	assert.Equal(t, out, "toyengine "+version+"\n")
}

func TestExecRunsStatementsInOrder(t *testing.T) {
	out, err := runCLI(t, "exec",
		"CREATE TABLE t (id INTEGER PRIMARY KEY, name STRING)",
		"INSERT INTO t VALUES (1, 'a')",
		"SELECT name FROM t WHERE id = 1",
	)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "name\n---\na\n(1 rows)\n"))
}

func TestExecStopsAtFirstFailure(t *testing.T) {
	out, err := runCLI(t, "exec",
		"CREATE TABLE t (id INTEGER PRIMARY KEY)",
		"INSERT INTO t VALUES (1)",
		"INSERT INTO t VALUES (1)",
		"SELECT * FROM t",
	)
	assert.ErrorContains(t, err, "statement 3")
	assert.Assert(t, is.Contains(out, "Error:"))
	assert.Assert(t, !bytes.Contains([]byte(out), []byte("(1 rows)")))
}

func TestExecParseError(t *testing.T) {
	_, err := runCLI(t, "exec", "SELEC * FROM t")
	assert.ErrorContains(t, err, "parse error")
}

func TestDemo(t *testing.T) {
	out, err := runCLI(t, "demo")
	assert.NilError(t, err)
	assert.Equal(t, out, "demo completed\n")
}
