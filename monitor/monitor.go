// Package monitor is an interactive terminal for running the diagnostic
// self-tests of the board. Self-tests block for as long as they run, so each
// one runs in its own goroutine and only one can run at a time.
package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/simon/diagnostics"
	"github.com/jetsetilly/simon/logger"
)

// resultMsg is sent when a self-test has finished
type resultMsg struct {
	cmd    command
	output []string
	err    error
}

type monitor struct {
	diag *diagnostics.Diagnostics

	viewport viewport.Model
	input    textinput.Model
	output   []string
	styles   styles

	// the name of the self-test currently running. empty if no test is
	// running
	busy string
}

func newMonitor(diag *diagnostics.Diagnostics) *monitor {
	m := &monitor{
		diag:   diag,
		styles: newStyles(),
	}

	m.input = textinput.New()
	m.input.Placeholder = "HELP"
	m.input.Prompt = m.styles.prompt.Render("> ")
	m.input.Focus()
	m.input.CharLimit = 256
	m.input.Width = 50

	m.viewport = viewport.New(80, 20)

	return m
}

func (m *monitor) print(style func(...string) string, s ...string) {
	for _, l := range s {
		m.output = append(m.output, style(l))
	}
}

func (m *monitor) Init() tea.Cmd {
	m.print(m.styles.monitor.Render, "diagnostics monitor")
	if err := m.diag.Begin(); err != nil {
		m.print(m.styles.err.Render, err.Error())
	}
	m.print(m.styles.help.Render, "type HELP for a list of commands")
	return textinput.Blink
}

// start returns the tea.Cmd that runs the self-test in a new goroutine
func (m *monitor) start(cmd command) tea.Cmd {
	m.busy = cmd.name
	m.print(m.styles.monitor.Render, fmt.Sprintf("%s started", cmd.name))

	diag := m.diag
	return func() tea.Msg {
		out, err := run(diag, cmd)
		return resultMsg{cmd: cmd, output: out, err: err}
	}
}

// enter handles the command line. the returned tea.Cmd may be nil
func (m *monitor) enter(s string) tea.Cmd {
	cmd, err := parseCommand(s)
	if err != nil {
		m.print(m.styles.err.Render, err.Error())
		return nil
	}

	switch cmd.name {
	case "":
		return nil
	case "QUIT":
		return m.quit()
	case "HELP":
		m.print(m.styles.help.Render, help()...)
		return nil
	case "LOG":
		var b strings.Builder
		logger.Tail(&b, cmd.args[0])
		m.print(m.styles.status.Render, strings.Split(strings.TrimRight(b.String(), "\n"), "\n")...)
		return nil
	case "STATUS":
		m.print(m.styles.status.Render, m.diag.Status())
		return nil
	}

	if m.busy != "" {
		m.print(m.styles.err.Render, fmt.Sprintf("%s is still running", m.busy))
		return nil
	}

	return m.start(cmd)
}

func (m *monitor) quit() tea.Cmd {
	if m.busy != "" {
		m.print(m.styles.err.Render, fmt.Sprintf("wait for %s to finish", m.busy))
		return nil
	}
	if err := m.diag.End(); err != nil {
		logger.Log(logger.Allow, "monitor", err)
	}
	return tea.Quit
}

func (m *monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1

	case resultMsg:
		m.busy = ""
		m.print(m.styles.result.Render, msg.output...)
		if msg.err != nil {
			m.print(m.styles.err.Render, msg.err.Error())
		} else {
			m.print(m.styles.monitor.Render, fmt.Sprintf("%s finished", msg.cmd.name))
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if cmd := m.quit(); cmd != nil {
				return m, cmd
			}
		case "ctrl+c":
			// a running self-test is abandoned
			return m, tea.Quit
		case "enter":
			cmds = append(cmds, m.enter(m.input.Value()))
			m.input.SetValue("")
		}
	}

	// always scroll to the bottom of the output
	m.viewport.SetContent(strings.Join(m.output, "\n"))
	m.viewport.GotoBottom()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *monitor) View() string {
	return fmt.Sprintf("%s\n%s",
		m.viewport.View(),
		m.input.View(),
	)
}

// Launch the monitor. Returns when the user quits the monitor or when the end
// channel receives a value
func Launch(end chan bool, diag *diagnostics.Diagnostics) error {
	m := newMonitor(diag)
	p := tea.NewProgram(m)

	go func() {
		<-end
		p.Quit()
	}()

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	return nil
}
