package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/sorting"
)

func init() {
	Register(&SearchCmd{})
}

// SearchCmd implements the search command.
// Keyword and filters combine with AND.
type SearchCmd struct {
	status   optionalString
	priority optionalString
	category optionalString
	sortKey  string
}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return []string{"find", "filter"} }
func (c *SearchCmd) Synopsis() string  { return "Search and filter tasks" }
func (c *SearchCmd) Usage() string {
	return "search [--status complete|incomplete] [--priority <p>] [--category <c>] [--sort <key>] [keyword...]"
}
func (c *SearchCmd) NeedsService() bool { return true }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {
	optionalVar(fs, &c.status, "status")
	optionalVar(fs, &c.priority, "priority", "p")
	optionalVar(fs, &c.category, "category", "c")
	fs.StringVar(&c.sortKey, "sort", "", "")
	fs.StringVar(&c.sortKey, "s", "", "")
}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	key, err := sorting.ParseKey(c.sortKey)
	if err != nil {
		return reportError(errOut, err)
	}

	tasks, err := svc.SearchAndFilter(service.Criteria{
		Keyword:  strings.Join(args, " "),
		Status:   c.status.ptr(),
		Priority: c.priority.ptr(),
		Category: c.category.ptr(),
	})
	if err != nil {
		return reportError(errOut, err)
	}

	return printTasks(cfg, key.Apply(tasks), out)
}
