// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend/memory"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := config.Load(config.DefaultConfigDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}
	if cfg.Color && !ui.IsTTY(os.Stdout) {
		cfg.Color = false
	}

	logger := logging.NewSession(os.Stderr, cfg.LogLevel)

	// The store lives as long as the process: one session, or one command.
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, memory.New(), cfg, logger)

	if len(args) > 0 {
		return dispatcher.Run(ctx, args, os.Stdout, os.Stderr)
	}

	if ui.IsTTY(os.Stdin) && ui.IsTTY(os.Stdout) {
		session := cli.NewSession(dispatcher, cfg.Prompt)
		err := ui.Run(ctx, session,
			ui.WithPrompt(cfg.Prompt),
			ui.WithBanner(cli.Banner()),
			ui.WithColor(cfg.Color),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: internal error: %v\n", err)
			return exitcode.InternalError
		}
		return exitcode.Success
	}

	// Piped input: no prompt echo.
	return cli.NewSession(dispatcher, "").Run(ctx, os.Stdin, os.Stdout, os.Stderr)
}
