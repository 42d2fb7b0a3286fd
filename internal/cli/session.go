package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
)

// Banner returns the line printed when a session starts.
func Banner() string {
	return fmt.Sprintf("%s %s: type 'help' for commands, 'quit' to exit", config.AppName, commands.Version)
}

// Session runs command lines against one dispatcher until quit or EOF.
type Session struct {
	dispatcher *Dispatcher
	prompt     string
}

// NewSession creates a session. An empty prompt disables prompting.
func NewSession(d *Dispatcher, prompt string) *Session {
	return &Session{dispatcher: d, prompt: prompt}
}

// IsQuit reports whether line ends the session.
func IsQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		return true
	}
	return false
}

// Exec runs a single session line and returns its exit code.
// Blank lines are ignored.
func (s *Session) Exec(ctx context.Context, line string, out, errOut io.Writer) int {
	if strings.TrimSpace(line) == "" {
		return exitcode.Success
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if len(args) == 0 {
		return exitcode.Success
	}
	return s.dispatcher.Run(ctx, args, out, errOut)
}

// Run reads lines from in, one command per line, until a quit command,
// EOF, or ctx is cancelled, then prints the summary.
func (s *Session) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	logger := s.dispatcher.Logger()
	logger.Info("session started")

	fmt.Fprintln(out, Banner())

	scanner := bufio.NewScanner(in)
	lines := 0
	for {
		if s.prompt != "" {
			fmt.Fprint(out, s.prompt)
		}
		if !scanner.Scan() {
			if s.prompt != "" {
				fmt.Fprintln(out)
			}
			break
		}
		line := scanner.Text()
		if IsQuit(line) {
			break
		}
		lines++
		s.Exec(ctx, line, out, errOut)
		if ctx.Err() != nil {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: internal error: reading input: %v\n", err)
		s.Summary(out)
		return exitcode.InternalError
	}

	s.Summary(out)
	logger.Info("session ended", "lines", lines)
	return exitcode.Success
}

// Summary prints the closing task counts.
func (s *Session) Summary(out io.Writer) {
	fmt.Fprintln(out, "Session summary:")
	output.NewStyles(s.dispatcher.Config().Color).FormatStats(out, s.dispatcher.Service().Stats())
}
