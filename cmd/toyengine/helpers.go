package main

import (
	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/executor"
)

// newSession builds a session wired to the loaded config
func newSession() *executor.Session {
	opts := []executor.Option{
		executor.WithLogger(logger),
		executor.WithAutoReindex(cfg.Shell.AutoReindex),
	}
	if cfg.Log.Mutations {
		opts = append(opts, executor.WithTableObserver(engine.NewLoggingObserver(logger)))
	}
	return executor.NewSession(opts...)
}
