package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/executor"
)

func newSession() *executor.Session {
	return executor.NewSession(executor.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestStartRunsStatements(t *testing.T) {
	input := strings.Join([]string{
		"CREATE TABLE users (id INT PRIMARY KEY, name TEXT, joined DATE)",
		"INSERT INTO users VALUES (1, 'ann', DATE '2024-01-02')",
		"INSERT INTO users VALUES (2, NULL, NULL)",
		"",
		"SELECT * FROM users",
		"SELEKT nonsense",
		"exit",
		"SELECT * FROM users",
	}, "\n")

	var out bytes.Buffer
	err := Start(context.Background(), strings.NewReader(input), &out, newSession(), "> ")
	assert.NilError(t, err)

	got := out.String()
	assert.Assert(t, is.Contains(got, "Table 'users' created"))
	assert.Assert(t, is.Contains(got, "1 row inserted"))
	assert.Assert(t, is.Contains(got, "ann   2024-01-02"))
	assert.Assert(t, is.Contains(got, "NULL"))
	assert.Assert(t, is.Contains(got, "Error: parse error"))
	assert.Equal(t, strings.Count(got, "(2 rows)"), 1, "input after exit is not read")
}

func TestStartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Start(ctx, strings.NewReader("pwd\n"), &out, newSession(), "> ")
	assert.Assert(t, errors.Is(err, context.Canceled))
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	PrintResult(&out, engine.NewQueryResult(
		[]string{"id", "name"},
		[]engine.Row{{int64(1), "a"}, {int64(22), nil}},
		2,
	))
	want := "id   name\n---  ---\n1    a\n22   NULL\n(2 rows)\n"
	assert.Equal(t, out.String(), want)

	out.Reset()
	PrintResult(&out, engine.NewErrorResult(errors.New("boom")))
	assert.Equal(t, out.String(), "Error: boom\n")

	out.Reset()
	PrintResult(&out, engine.NewMessageResult("/docs", 0))
	assert.Equal(t, out.String(), "/docs\n")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, formatValue(nil), "NULL")
	assert.Equal(t, formatValue(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)), "2024-03-04")
	assert.Equal(t, formatValue(2.5), "2.5")
	assert.Equal(t, formatValue(true), "true")
}

func TestStartAcceptsLongLines(t *testing.T) {
	content := strings.Repeat("x", 200*1024)
	input := "TOUCH big.txt '" + content + "'\nCAT big.txt\n"

	session := newSession()
	var out bytes.Buffer
	err := Start(context.Background(), strings.NewReader(input), &out, session, "> ")
	assert.NilError(t, err)

	node := session.FileSystem().ResolvePath("/big.txt")
	assert.Assert(t, node != nil, "big.txt was not created")
	assert.Equal(t, node.Size(), len(content))
	assert.Assert(t, is.Contains(out.String(), content))
}
