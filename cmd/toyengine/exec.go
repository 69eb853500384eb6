package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leengari/toyengine/internal/repl"
)

var execCmd = &cobra.Command{
	Use:   "exec <statement>...",
	Short: "Run statements in order against a fresh session",
	Long: `Exec runs each argument as one statement, printing every result.
It stops at the first statement that fails.

Example:
  toyengine exec "CREATE TABLE t (id INTEGER PRIMARY KEY, name STRING)" \
                 "INSERT INTO t VALUES (1, 'a')" \
                 "SELECT * FROM t"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	session := newSession()
	out := cmd.OutOrStdout()

	for i, stmt := range args {
		res, err := session.Execute(stmt)
		if err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
		repl.PrintResult(out, res)
		if res.HasError() {
			return fmt.Errorf("statement %d: %s", i+1, res.Err())
		}
	}
	return nil
}
