package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateProfile
	stateChapters
	stateSummary
)

type loggedOutMsg struct{}

type RootModel struct {
	State    state
	Client   *Client
	Login    LoginModel
	Profile  ProfileModel
	Chapters ChaptersModel
	Summary  SummaryModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(c *Client) RootModel {
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
		width:  80,
		height: 24,
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) logoutCmd() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.Client.Logout(ctx)
	return loggedOutMsg{}
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.Chapters.Client != nil {
			m.Chapters.List.SetSize(msg.Width-4, msg.Height-2)
		}
		m.Summary.Viewport.Width = msg.Width - 4
		m.Summary.Viewport.Height = max(msg.Height-8, 3)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Sequence(m.logoutCmd, tea.Quit)
		}

	case loginDoneMsg:
		m.Login.Busy = false
		m.State = stateProfile
		m.Profile = NewProfileModel(m.Client, msg.user)
		return m, m.Profile.Init()

	case loggedOutMsg:
		if m.Quitting {
			return m, nil
		}
		m.State = stateLogin
		m.Login = NewLoginModel(m.Client)
		return m, m.Login.Init()

	case ChapterSelectedMsg:
		m.State = stateSummary
		m.Summary = NewSummaryModel(m.Client, msg.Chapter, m.width-4, m.height-2)
		return m, m.Summary.Init()

	case BackToChaptersMsg:
		m.State = stateChapters
		return m, nil
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)

	case stateProfile:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.Type {
			case tea.KeyCtrlN:
				m.State = stateChapters
				if m.Chapters.Client == nil {
					m.Chapters = NewChaptersModel(m.Client, m.width-4, m.height-2)
					return m, m.Chapters.Init()
				}
				return m, nil
			case tea.KeyCtrlL:
				return m, m.logoutCmd
			}
		}
		m.Profile, cmd = m.Profile.Update(msg)

	case stateChapters:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc && !m.Chapters.Filtering() {
			m.State = stateProfile
			return m, nil
		}
		m.Chapters, cmd = m.Chapters.Update(msg)

	case stateSummary:
		m.Summary, cmd = m.Summary.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateProfile:
		return m.Profile.View()
	case stateChapters:
		return m.Chapters.View()
	case stateSummary:
		return m.Summary.View()
	}
	return "Unknown state"
}
