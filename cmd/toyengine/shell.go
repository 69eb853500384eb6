package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/leengari/toyengine/internal/repl"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell",
	Long: `Shell reads one statement per line from stdin and prints each result.

Example:
  toyengine shell
  toyengine shell --config toyengine.yaml`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("shell started", "auto_reindex", cfg.Shell.AutoReindex)
	err := repl.Start(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), newSession(), cfg.Shell.Prompt)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
