package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/tieubaoca/docchat/service"
	"github.com/tieubaoca/docchat/types"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		inputCmd tea.Cmd
		vpCmd    tea.Cmd
		spinCmd  tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.showDoc = !m.showDoc
			return m, nil
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyCtrlO:
			m.focusNewestCitation()
			return m, nil
		case tea.KeyCtrlY:
			m.copyLastAnswer()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case eventMsg:
		if m.ready {
			m.transcriptVP.SetContent(m.renderTranscript())
			m.transcriptVP.GotoBottom()
		}
		return m, tea.Batch(m.listenEvents(), m.spin.Tick)

	case pagesMsg:
		m.pages = msg
		m.buildDocPane()
		m.ctrl.MountViewport(m)
		return m, nil

	case pagesErrMsg:
		// The chat still works without a document pane.
		m.pages = nil
		m.ctrl.MountViewport(nil)
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Processing() || m.ctrl.ChatBusy() {
			m.spin, spinCmd = m.spin.Update(msg)
			return m, spinCmd
		}
		return m, nil
	}

	m.input, inputCmd = m.input.Update(msg)
	if m.showDoc {
		m.docVP, vpCmd = m.docVP.Update(msg)
	} else {
		m.transcriptVP, vpCmd = m.transcriptVP.Update(msg)
	}
	return m, tea.Batch(inputCmd, vpCmd)
}

// submit routes the input line: /open and /reset are local commands,
// everything else goes to the dispatcher.
func (m *model) submit() tea.Cmd {
	value := m.input.Value()
	trimmed := strings.TrimSpace(value)

	switch {
	case trimmed == "":
		return nil
	case strings.HasPrefix(trimmed, "/open "):
		m.input.Reset()
		return m.selectFile(strings.TrimSpace(strings.TrimPrefix(trimmed, "/open ")))
	case trimmed == "/reset":
		m.input.Reset()
		m.pages = nil
		m.showDoc = false
		m.ctrl.MountViewport(nil)
		m.ctrl.Reset()
		return nil
	}

	if err := m.ctrl.Ask(value); err != nil {
		m.status = askErrorStatus(err)
		return nil
	}
	m.status = ""
	m.input.Reset()
	return m.spin.Tick
}

func askErrorStatus(err error) string {
	switch {
	case errors.Is(err, service.ErrNoDocument):
		return "Open a document first: /open <file.pdf>"
	case errors.Is(err, service.ErrNotReady):
		return "The document is not ready for questions yet."
	case errors.Is(err, service.ErrBusy):
		return "Still working on the previous question."
	case errors.Is(err, service.ErrEmptyQuestion):
		return ""
	default:
		return err.Error()
	}
}

// selectFile hands the candidate to the session and kicks off page
// extraction for the document pane.
func (m *model) selectFile(path string) tea.Cmd {
	if err := m.ctrl.Select(path); err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = ""
	m.pages = nil
	m.showDoc = false
	m.ctrl.MountViewport(nil)

	doc := m.ctrl.Document()
	if doc == nil {
		return nil
	}
	staged := doc.LocalPath
	return func() tea.Msg {
		pages, err := service.ExtractPages(staged)
		if err != nil {
			return pagesErrMsg(err)
		}
		return pagesMsg(pages)
	}
}

func (m *model) focusNewestCitation() {
	entries := m.ctrl.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if bot, ok := entries[i].(types.Bot); ok {
			if len(bot.Citations) > 0 {
				m.ctrl.FocusCitation(bot.Citations[0])
			}
			return
		}
	}
}

func (m *model) copyLastAnswer() {
	entries := m.ctrl.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if bot, ok := entries[i].(types.Bot); ok {
			if err := clipboard.WriteAll(bot.Content); err == nil {
				m.status = "Answer copied."
			}
			return
		}
	}
}

// layout sizes the panes after a resize and rebuilds wrapped content.
func (m *model) layout() {
	headerHeight := 2
	statusHeight := 1
	inputHeight := 1
	bodyHeight := m.height - headerHeight - statusHeight - inputHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyWidth := m.width - 2
	if bodyWidth < 1 {
		bodyWidth = 1
	}

	if !m.ready {
		m.transcriptVP = viewport.New(bodyWidth, bodyHeight)
		m.docVP = viewport.New(bodyWidth, bodyHeight)
		m.ready = true
	} else {
		m.transcriptVP.Width = bodyWidth
		m.transcriptVP.Height = bodyHeight
		m.docVP.Width = bodyWidth
		m.docVP.Height = bodyHeight
	}
	inputWidth := bodyWidth - 4
	if inputWidth < 1 {
		inputWidth = 1
	}
	m.input.Width = inputWidth

	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(bodyWidth),
	)

	m.transcriptVP.SetContent(m.renderTranscript())
	m.transcriptVP.GotoBottom()
	m.buildDocPane()
}

// buildDocPane joins the extracted pages with headers and records the line
// offset of every page so Reveal can scroll to it.
func (m *model) buildDocPane() {
	if len(m.pages) == 0 || !m.ready {
		m.pageOffsets = nil
		m.docVP.SetContent("No document text available.")
		return
	}

	var b strings.Builder
	m.pageOffsets = make([]int, 0, len(m.pages))
	line := 0
	for i, page := range m.pages {
		m.pageOffsets = append(m.pageOffsets, line)
		header := pageHeaderStyle.Render(fmt.Sprintf("── Page %d ──", i+1))
		wrapped := wrapText(page, m.docVP.Width)
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(wrapped)
		b.WriteString("\n")
		line += 2 + strings.Count(wrapped, "\n")
	}
	m.docVP.SetContent(b.String())
}
