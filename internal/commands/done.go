package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string   { return "Mark a task complete" }
func (c *DoneCmd) Usage() string      { return "done <id>" }
func (c *DoneCmd) NeedsService() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(cfg, svc.MarkComplete, args, out, errOut)
}

// UndoCmd implements the undo command.
type UndoCmd struct{}

func (c *UndoCmd) Name() string       { return "undo" }
func (c *UndoCmd) Aliases() []string  { return []string{"reopen", "incomplete"} }
func (c *UndoCmd) Synopsis() string   { return "Mark a task incomplete" }
func (c *UndoCmd) Usage() string      { return "undo <id>" }
func (c *UndoCmd) NeedsService() bool { return true }

func (c *UndoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(cfg, svc.MarkIncomplete, args, out, errOut)
}

// runMark is the shared implementation for done and undo.
func runMark(cfg *config.Config, mark func(int) (service.Task, error), args []string, out, errOut io.Writer) int {
	id, code, ok := taskIDArg(args, errOut)
	if !ok {
		return code
	}

	task, err := mark(id)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		output.NewStyles(cfg.Color).FormatTask(out, task)
	}
	return exitcode.Success
}
