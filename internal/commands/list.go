package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/sorting"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	sortKey string
	recent  bool
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls", "view"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "list [--sort title|priority|due] [--recent]" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.sortKey, "sort", "", "")
	fs.StringVar(&c.sortKey, "s", "", "")
	fs.BoolVar(&c.recent, "recent", false, "")
	fs.BoolVar(&c.recent, "r", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	key, err := sorting.ParseKey(c.sortKey)
	if err != nil {
		return reportError(errOut, err)
	}

	var tasks []service.Task
	if c.recent {
		tasks = svc.RecentTasks(cfg.RecentCount)
	} else {
		tasks = svc.ListTasks()
	}
	return printTasks(cfg, key.Apply(tasks), out)
}

// printTasks renders tasks; in quiet mode an empty result prints nothing.
func printTasks(cfg *config.Config, tasks []service.Task, out io.Writer) int {
	if len(tasks) == 0 && cfg.Quiet {
		return exitcode.Success
	}
	output.NewStyles(cfg.Color).FormatTasks(out, tasks)
	return exitcode.Success
}
