package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/tieubaoca/docchat/types"
)

func (m *model) View() string {
	if !m.ready {
		return "Loading…"
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	if m.showDoc {
		b.WriteString(m.docVP.View())
	} else {
		b.WriteString(m.transcriptVP.View())
	}
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m *model) headerView() string {
	title := titleStyle.Render("docchat")
	doc := "no document"
	if d := m.ctrl.Document(); d != nil {
		doc = d.Name
	}
	badge := stateBadge(m.ctrl.State())
	pane := "transcript"
	if m.showDoc {
		pane = "document"
	}
	return fmt.Sprintf("%s  %s %s  %s\n%s",
		title, docStyle.Render(doc), badge, faintStyle.Render("["+pane+"]"),
		faintStyle.Render("enter ask · /open file · tab pane · ctrl+o citation · ctrl+y copy · esc quit"))
}

func (m *model) statusView() string {
	if m.ctrl.Processing() {
		return m.spin.View() + faintStyle.Render(" processing document…")
	}
	if m.ctrl.ChatBusy() {
		return m.spin.View() + faintStyle.Render(" thinking…")
	}
	if m.status != "" {
		return errorStyle.Render(m.status)
	}
	return ""
}

func stateBadge(state types.ProcessingState) string {
	switch state {
	case types.StateUploading:
		return badgeUploadingStyle.Render("uploading")
	case types.StateReady:
		return badgeReadyStyle.Render("ready")
	case types.StateFailed:
		return badgeFailedStyle.Render("failed")
	default:
		return badgeEmptyStyle.Render("empty")
	}
}

// renderTranscript draws the conversation log. Bot answers go through the
// markdown renderer; everything else is plain wrapped text.
func (m *model) renderTranscript() string {
	entries := m.ctrl.Entries()
	if len(entries) == 0 {
		return faintStyle.Render("Open a PDF with /open <file.pdf> to get started.")
	}

	width := m.transcriptVP.Width
	var b strings.Builder
	for _, entry := range entries {
		switch e := entry.(type) {
		case types.System:
			style := systemStyle
			if e.IsError {
				style = errorStyle
			}
			content := e.Content
			if e.IsProcessing {
				content = m.spin.View() + " " + content
			}
			b.WriteString(style.Render(wrapText(content, width)))
		case types.User:
			b.WriteString(userLabelStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(wrapText(e.Content, width))
		case types.Bot:
			b.WriteString(botLabelStyle.Render("Assistant"))
			b.WriteString("\n")
			rendered := e.Content
			if m.renderer != nil {
				if out, err := m.renderer.Render(e.Content); err == nil {
					rendered = strings.TrimRight(out, "\n")
				}
			}
			b.WriteString(rendered)
			if len(e.Citations) > 0 {
				b.WriteString("\n")
				b.WriteString(citationLine(e.Citations))
			}
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func citationLine(citations []types.Citation) string {
	tags := make([]string, len(citations))
	for i, c := range citations {
		tags[i] = fmt.Sprintf("[p.%d]", c.Page)
	}
	return citationStyle.Render(strings.Join(tags, " "))
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
