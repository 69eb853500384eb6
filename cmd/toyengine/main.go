// Package main provides the toyengine CLI: an interactive shell plus
// one-shot execution over an in-memory table engine and filesystem.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leengari/toyengine/internal/config"
	"github.com/leengari/toyengine/internal/logging"
)

const version = "v0.1.0"

var (
	// configFile is set by the --config flag.
	configFile string

	// cfg and logger are initialized by PersistentPreRunE.
	cfg         *config.Config
	logger      *slog.Logger
	closeLogger = func() {}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "toyengine",
	Short: "toyengine is an in-memory table engine with a toy filesystem",
	Long: `toyengine keeps typed tables, secondary indexes and a small
hierarchical filesystem in memory. Statements are entered in a shell
or passed on the command line.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default: built-in defaults and TOYENGINE_* env)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(demoCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "toyengine "+version)
	},
}

// initRuntime loads config and installs the process logger.
func initRuntime(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}

	l, closeFn, err := logging.SetupLogger(logging.Options{
		Level:  loaded.Log.Level,
		SeqURL: loaded.Log.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	cfg, logger, closeLogger = loaded, l, closeFn
	slog.SetDefault(logger)
	return nil
}
