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
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
// Omitted flags leave fields unchanged; --desc "" clears the description.
type UpdateCmd struct {
	title       optionalString
	description optionalString
}

func (c *UpdateCmd) Name() string       { return "update" }
func (c *UpdateCmd) Aliases() []string  { return []string{"edit"} }
func (c *UpdateCmd) Synopsis() string   { return "Change a task's title or description" }
func (c *UpdateCmd) Usage() string      { return "update [--title <t>] [--desc <text>] <id>" }
func (c *UpdateCmd) NeedsService() bool { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {
	optionalVar(fs, &c.title, "title", "t")
	optionalVar(fs, &c.description, "desc", "d")
}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, code, ok := taskIDArg(args, errOut)
	if !ok {
		return code
	}

	task, err := svc.UpdateTask(id, service.TaskUpdate{
		Title:       c.title.ptr(),
		Description: c.description.ptr(),
	})
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		output.NewStyles(cfg.Color).FormatTask(out, task)
	}
	return exitcode.Success
}
