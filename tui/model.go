// Package tui renders the chat session in the terminal. All session state
// lives in the service controller; the model here is presentation only.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/tieubaoca/docchat/service"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Controller  *service.Controller
	InitialFile string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	input := textinput.New()
	input.Placeholder = "Ask a question, or /open <file.pdf>"
	input.CharLimit = 500
	input.Prompt = "> "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &model{
		ctrl:        config.Controller,
		input:       input,
		spin:        spin,
		initialFile: config.InitialFile,
	}
}

type model struct {
	ctrl *service.Controller

	input        textinput.Model
	transcriptVP viewport.Model
	docVP        viewport.Model
	spin         spinner.Model
	renderer     *glamour.TermRenderer

	initialFile string
	pages       []string
	pageOffsets []int
	showDoc     bool

	width  int
	height int
	ready  bool
	status string
}

// Messages for tea updates.
type (
	eventMsg    service.Event
	pagesMsg    []string
	pagesErrMsg error
)

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick, m.listenEvents()}
	if m.initialFile != "" {
		if cmd := m.selectFile(m.initialFile); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// listenEvents pumps controller notifications into the update loop.
func (m *model) listenEvents() tea.Cmd {
	events := m.ctrl.Events()
	return func() tea.Msg {
		return eventMsg(<-events)
	}
}

// Reveal implements service.Viewport: it scrolls the document pane to the
// cited page and brings the pane into view. Best effort; an out-of-range
// page lands on the nearest edge.
func (m *model) Reveal(page int) {
	if len(m.pageOffsets) == 0 {
		return
	}
	idx := page - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.pageOffsets) {
		idx = len(m.pageOffsets) - 1
	}
	m.showDoc = true
	m.docVP.SetYOffset(m.pageOffsets[idx])
}
