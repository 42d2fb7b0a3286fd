// Package ui provides the interactive terminal session.
package ui

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"todo/internal/cli"
)

// Runner executes session lines. *cli.Session implements it.
type Runner interface {
	Exec(ctx context.Context, line string, out, errOut io.Writer) int
	Summary(out io.Writer)
}

// Option configures the UI.
type Option func(*uiConfig)

type uiConfig struct {
	prompt string
	banner string
	color  bool
}

// WithPrompt sets the input prompt.
func WithPrompt(prompt string) Option {
	return func(c *uiConfig) {
		c.prompt = prompt
	}
}

// WithBanner sets the first scrollback line.
func WithBanner(banner string) Option {
	return func(c *uiConfig) {
		c.banner = banner
	}
}

// WithColor enables styled echo and error lines.
func WithColor(enabled bool) Option {
	return func(c *uiConfig) {
		c.color = enabled
	}
}

// Run starts the UI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, runner Runner, opts ...Option) error {
	m := NewModel(ctx, runner, opts...)
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		// Interrupted by a signal.
		return nil
	}
	return err
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Model is the bubbletea model: a scrollback above a single input line.
type Model struct {
	ctx      context.Context
	runner   Runner
	input    textinput.Model
	lines    []string
	height   int
	quitting bool

	color      bool
	echoStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

// NewModel creates a focused model. Defaults: prompt "> ", no banner,
// no color.
func NewModel(ctx context.Context, runner Runner, opts ...Option) Model {
	c := &uiConfig{prompt: "> "}
	for _, opt := range opts {
		opt(c)
	}

	ti := textinput.New()
	ti.Prompt = c.prompt
	ti.Placeholder = "help"
	ti.CharLimit = 512
	ti.Focus()

	m := Model{
		ctx:        ctx,
		runner:     runner,
		input:      ti,
		color:      c.color,
		echoStyle:  lipgloss.NewStyle().Faint(true),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
	if c.banner != "" {
		m.lines = append(m.lines, c.banner)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m.quit()
		case tea.KeyEnter:
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.lines = append(m.lines, m.paint(m.echoStyle, m.input.Prompt+line))

	if cli.IsQuit(line) {
		return m.quit()
	}

	var out, errOut bytes.Buffer
	m.runner.Exec(m.ctx, line, &out, &errOut)
	m.lines = append(m.lines, splitLines(out.String())...)
	for _, l := range splitLines(errOut.String()) {
		m.lines = append(m.lines, m.paint(m.errorStyle, l))
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	var out bytes.Buffer
	m.runner.Summary(&out)
	m.lines = append(m.lines, splitLines(out.String())...)
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	var b strings.Builder

	lines := m.lines
	// Keep one row for the input line.
	if !m.quitting && m.height > 1 && len(lines) > m.height-1 {
		lines = lines[len(lines)-(m.height-1):]
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}

	if !m.quitting {
		b.WriteString(m.input.View())
	}
	return b.String()
}

// Lines returns the scrollback, oldest first.
func (m Model) Lines() []string {
	return m.lines
}

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) paint(st lipgloss.Style, text string) string {
	if !m.color {
		return text
	}
	return st.Render(text)
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
