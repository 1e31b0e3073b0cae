package ui

import (
	"context"
	"fmt"
	"strings"

	"edurev/backend/app/dto"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type profileSavedMsg struct {
	message string
	user    dto.Identity
}

const (
	inputFullName = iota
	inputCurrent
	inputNew
	inputConfirm
)

// ProfileModel shows the signed-in identity and the profile update form.
type ProfileModel struct {
	Client *Client
	User   dto.Identity
	Form   form
	Status string
	Err    error
	Busy   bool
}

func NewProfileModel(c *Client, user dto.Identity) ProfileModel {
	m := ProfileModel{
		Client: c,
		User:   user,
		Form: form{Inputs: []textinput.Model{
			newInput("Full name:        ", user.FullName, false),
			newInput("Current password: ", "", true),
			newInput("New password:     ", "", true),
			newInput("Confirm password: ", "", true),
		}},
	}
	m.Form.focus(inputFullName)
	return m
}

func (m ProfileModel) Init() tea.Cmd { return textinput.Blink }

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.Form.onLast() {
				if m.Busy {
					return m, nil
				}
				m.Busy, m.Err, m.Status = true, nil, ""
				return m, m.saveCmd(m.request())
			}
			return m, m.Form.next()
		case tea.KeyTab, tea.KeyDown:
			return m, m.Form.next()
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.Form.prev()
		}
	case profileSavedMsg:
		m.Busy, m.Status, m.User = false, msg.message, msg.user
		m.Form.reset()
		m.Form.Inputs[inputFullName].Placeholder = msg.user.FullName
		return m, m.Form.focus(inputFullName)
	case errMsg:
		m.Busy, m.Err = false, msg.err
		return m, nil
	}
	return m, m.Form.update(msg)
}

func (m ProfileModel) request() dto.UpdateUserRequest {
	return dto.UpdateUserRequest{
		FullName:           m.Form.value(inputFullName),
		CurrentPassword:    m.Form.value(inputCurrent),
		NewPassword:        m.Form.value(inputNew),
		ConfirmNewPassword: m.Form.value(inputConfirm),
	}
}

func (m ProfileModel) saveCmd(req dto.UpdateUserRequest) tea.Cmd {
	id := m.User.UserID
	return func() tea.Msg {
		ctx := context.Background()
		message, err := m.Client.UpdateProfile(ctx, id, req)
		if err != nil {
			return errMsg{err}
		}
		user, err := m.Client.GetUser(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return profileSavedMsg{message: message, user: user}
	}
}

func (m ProfileModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("edurev - Profile") + "\n\n")
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Name"), m.User.FullName)
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Email"), m.User.Email)
	fmt.Fprintf(&b, "%s%s\n\n", labelStyle.Render("Role"), m.User.Role)
	b.WriteString(m.Form.view())
	b.WriteString("\n\n")
	if m.Busy {
		b.WriteString(statusMessageStyle("Saving...") + "\n")
	} else if m.Status != "" {
		b.WriteString(statusMessageStyle(m.Status) + "\n")
	}
	b.WriteString(blurredStyle.Render("Enter on the last field saves. Ctrl+N chapters, Ctrl+L log out, Ctrl+C quit"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
