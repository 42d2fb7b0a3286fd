package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority    string
	category    string
	due         string
	description string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "add [--priority <p>] [--category <c>] [--due <date>] [--desc <text>] <title...>"
}
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.category, "c", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	priority := c.priority
	if priority == "" {
		priority = cfg.DefaultPriority
	}
	category := c.category
	if strings.TrimSpace(category) == "" {
		category = cfg.DefaultCategory
	}

	task, err := svc.AddTask(service.NewTask{
		Title:       title,
		Description: c.description,
		Priority:    priority,
		Category:    category,
		DueDate:     c.due,
	})
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		output.NewStyles(cfg.Color).FormatTask(out, task)
	}
	return exitcode.Success
}
