package ui

import (
	"context"
	"strings"

	"edurev/backend/app/dto"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type summaryMsg struct {
	chapter dto.ChapterRef
	text    string
}

// BackToChaptersMsg returns from the summary to the chapter list.
type BackToChaptersMsg struct{}

type SummaryModel struct {
	Client   *Client
	Chapter  dto.ChapterRef
	Viewport viewport.Model
	Loading  bool
	Err      error
}

func NewSummaryModel(c *Client, ch dto.ChapterRef, width, height int) SummaryModel {
	vp := viewport.New(width, max(height-6, 3))
	vp.Style = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
	return SummaryModel{Client: c, Chapter: ch, Viewport: vp, Loading: true}
}

func (m SummaryModel) Init() tea.Cmd {
	ch := m.Chapter
	return func() tea.Msg {
		text, err := m.Client.Summarize(context.Background(), ch.ID)
		if err != nil {
			return errMsg{err}
		}
		return summaryMsg{chapter: ch, text: text}
	}
}

func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		if msg.chapter.ID != m.Chapter.ID {
			return m, nil
		}
		m.Loading = false
		m.Viewport.SetContent(lipgloss.NewStyle().Width(max(m.Viewport.Width-4, 20)).Render(msg.text))
		return m, nil
	case errMsg:
		m.Loading, m.Err = false, msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return BackToChaptersMsg{} }
		}
	}
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m SummaryModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chapter "+m.Chapter.ID+": "+m.Chapter.Title) + "\n\n")
	switch {
	case m.Err != nil:
		b.WriteString(errorMessageStyle(m.Err.Error()))
	case m.Loading:
		b.WriteString(statusMessageStyle("Generating summary..."))
	default:
		b.WriteString(m.Viewport.View())
	}
	b.WriteString("\n\n" + blurredStyle.Render("up/down to scroll, Esc to go back"))
	return docStyle.Render(b.String())
}
