// Package cli parses command lines and dispatches them to registered
// commands, either once from os.Args or repeatedly within a session.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// Dispatcher handles command-line parsing and dispatch.
// Every command it runs shares the same service, so a session sees the
// effects of earlier commands.
type Dispatcher struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
	logger   *log.Logger
}

// NewDispatcher creates a new dispatcher. A nil logger discards logs.
func NewDispatcher(registry *commands.Registry, svc service.Service, cfg *config.Config, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Service returns the service commands run against.
func (d *Dispatcher) Service() service.Service {
	return d.svc
}

// Config returns the base configuration, before per-command flags.
func (d *Dispatcher) Config() *config.Config {
	return d.cfg
}

// Logger returns the dispatcher's logger.
func (d *Dispatcher) Logger() *log.Logger {
	return d.logger
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	if err := ctx.Err(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	}

	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var quiet bool
	var debug bool

	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg := d.cfg.WithFlags(quiet, debug)

	logger := d.logger
	if cfg.Debug {
		logger = d.logger.With()
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("dispatch", "command", cmd.Name(), "args", positionalArgs)

	var svc service.Service
	if cmd.NeedsService() {
		if d.svc == nil {
			fmt.Fprintln(errOut, "error: internal error: no task store")
			return exitcode.InternalError
		}
		svc = d.svc
	}

	code := cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)
	logger.Debug("finished", "command", cmd.Name(), "exit", code)
	return code
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "flag needs an argument") {
		parts := strings.SplitN(errStr, ":", 2)
		if len(parts) == 2 {
			return "flag needs an argument: " + strings.TrimSpace(parts[1])
		}
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		return "unknown flag: " + strings.TrimPrefix(errStr, "flag provided but not defined: ")
	}

	return errStr
}
