package ui

import (
	"context"

	"edurev/backend/app/dto"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type chaptersMsg struct{ chapters []dto.ChapterRef }

// ChapterSelectedMsg asks the root model to summarize a chapter.
type ChapterSelectedMsg struct{ Chapter dto.ChapterRef }

type chapterItem struct{ ref dto.ChapterRef }

func (i chapterItem) Title() string       { return i.ref.ID + ". " + i.ref.Title }
func (i chapterItem) Description() string { return "IGCSE Economics, chapter " + i.ref.ID }
func (i chapterItem) FilterValue() string { return i.ref.Title }

type ChaptersModel struct {
	Client *Client
	List   list.Model
	Err    error
}

func NewChaptersModel(c *Client, width, height int) ChaptersModel {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Chapters"
	l.Styles.Title = titleStyle
	l.SetStatusBarItemName("chapter", "chapters")
	return ChaptersModel{Client: c, List: l}
}

func (m ChaptersModel) Init() tea.Cmd {
	return func() tea.Msg {
		chapters, err := m.Client.Chapters(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return chaptersMsg{chapters: chapters}
	}
}

// Filtering reports whether keys currently go to the list's filter input.
func (m ChaptersModel) Filtering() bool {
	return m.List.FilterState() == list.Filtering
}

func (m ChaptersModel) Update(msg tea.Msg) (ChaptersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chaptersMsg:
		items := make([]list.Item, 0, len(msg.chapters))
		for _, ch := range msg.chapters {
			items = append(items, chapterItem{ref: ch})
		}
		return m, m.List.SetItems(items)
	case errMsg:
		m.Err = msg.err
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && !m.Filtering() {
			if it, ok := m.List.SelectedItem().(chapterItem); ok {
				return m, func() tea.Msg { return ChapterSelectedMsg{Chapter: it.ref} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m ChaptersModel) View() string {
	v := m.List.View()
	if m.Err != nil {
		v += "\n" + errorMessageStyle(m.Err.Error())
	}
	return docStyle.Render(v)
}
