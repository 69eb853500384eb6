package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/executor"
)

const (
	dateLayout = "2006-01-02"

	// maxLineSize bounds one input line; long TOUCH contents fit comfortably
	maxLineSize = 16 << 20
)

// Start reads statements line by line from in until EOF, "exit" or "\q",
// or until ctx is cancelled between lines.
func Start(ctx context.Context, in io.Reader, out io.Writer, session *executor.Session, prompt string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	fmt.Fprintln(out, "Welcome to toyengine")
	fmt.Fprintln(out, "Type 'exit' or '\\q' to quit.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			return nil
		}

		result, err := session.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		PrintResult(out, result)
	}
}

func PrintResult(w io.Writer, res *engine.QueryResult) {
	if res.HasError() {
		fmt.Fprintf(w, "Error: %s\n", res.Err())
		return
	}

	if res.Message() != "" {
		fmt.Fprintln(w, res.Message())
	}

	columns := res.Columns()
	if len(columns) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Header
	fmt.Fprintln(tw, strings.Join(columns, "\t"))

	// Separator
	seps := make([]string, len(columns))
	for i := range seps {
		seps[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(seps, "\t"))

	// Rows
	for _, row := range res.Rows() {
		cells := make([]string, len(row))
		for i, val := range row {
			cells[i] = formatValue(val)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "(%d rows)\n", res.RowsAffected())
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return val.Format(dateLayout)
	default:
		return fmt.Sprintf("%v", val)
	}
}
