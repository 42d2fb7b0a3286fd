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
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return nil }
func (c *ShowCmd) Synopsis() string   { return "Show all fields of a task" }
func (c *ShowCmd) Usage() string      { return "show <id>" }
func (c *ShowCmd) NeedsService() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, code, ok := taskIDArg(args, errOut)
	if !ok {
		return code
	}
	if err := service.ValidateID(id); err != nil {
		return reportError(errOut, err)
	}

	task, found := svc.FindTask(id)
	if !found {
		return reportError(errOut, &service.NotFoundError{ID: id})
	}

	output.NewStyles(cfg.Color).FormatTaskDetail(out, task)
	return exitcode.Success
}
