package ui

import (
	"context"
	"errors"
	"strings"

	"edurev/backend/app/dto"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type errMsg struct{ err error }

type loginDoneMsg struct{ user dto.Identity }

const (
	inputEmail = iota
	inputPassword
)

type LoginModel struct {
	Client *Client
	Form   form
	Err    error
	Busy   bool
}

func NewLoginModel(c *Client) LoginModel {
	m := LoginModel{
		Client: c,
		Form: form{Inputs: []textinput.Model{
			newInput("Email:    ", "jane@example.com", false),
			newInput("Password: ", "password", true),
		}},
	}
	m.Form.focus(inputEmail)
	return m
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.Form.onLast() {
				if m.Busy {
					return m, nil
				}
				m.Busy, m.Err = true, nil
				return m, m.loginCmd(m.Form.value(inputEmail), m.Form.value(inputPassword))
			}
			return m, m.Form.next()
		case tea.KeyTab, tea.KeyDown:
			return m, m.Form.next()
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.Form.prev()
		}
	case errMsg:
		m.Busy, m.Err = false, msg.err
		return m, nil
	}
	return m, m.Form.update(msg)
}

func (m LoginModel) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		email = strings.TrimSpace(email)
		if email == "" || password == "" {
			return errMsg{errors.New("email and password are required")}
		}
		user, err := m.Client.Login(context.Background(), email, password)
		if err != nil {
			return errMsg{err}
		}
		return loginDoneMsg{user: user}
	}
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("edurev - Login") + "\n\n")
	b.WriteString(blurredStyle.Render(m.Client.BaseURL) + "\n\n")
	b.WriteString(m.Form.view())
	b.WriteString("\n\n")
	if m.Busy {
		b.WriteString(statusMessageStyle("Signing in...") + "\n")
	}
	b.WriteString(blurredStyle.Render("Tab to change fields, Enter to submit, Ctrl+C to quit"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
