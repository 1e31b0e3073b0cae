package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a focus ring over text inputs shared by the login and profile screens.
type form struct {
	Inputs   []textinput.Model
	FocusIdx int
}

func newInput(prompt, placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.PromptStyle = blurredStyle
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func (f *form) focus(i int) tea.Cmd {
	for j := range f.Inputs {
		f.Inputs[j].Blur()
		f.Inputs[j].PromptStyle = blurredStyle
	}
	f.FocusIdx = i
	f.Inputs[i].PromptStyle = focusedStyle
	return f.Inputs[i].Focus()
}

func (f *form) next() tea.Cmd {
	return f.focus((f.FocusIdx + 1) % len(f.Inputs))
}

func (f *form) prev() tea.Cmd {
	return f.focus((f.FocusIdx - 1 + len(f.Inputs)) % len(f.Inputs))
}

func (f *form) onLast() bool { return f.FocusIdx == len(f.Inputs)-1 }

func (f *form) value(i int) string { return f.Inputs[i].Value() }

func (f *form) reset() {
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
}

// update forwards msg to every input; only the focused one reacts to keys.
func (f *form) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.Inputs))
	for i := range f.Inputs {
		f.Inputs[i], cmds[i] = f.Inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (f *form) view() string {
	var s string
	for i := range f.Inputs {
		s += f.Inputs[i].View()
		if i < len(f.Inputs)-1 {
			s += "\n"
		}
	}
	return s
}
