package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label string
	input textinput.Model
}

// formModel is a column of labelled text inputs with tab focus cycling.
type formModel struct {
	title  string
	fields []formField
	focus  int
}

func newForm(title string, labels ...string) formModel {
	fields := make([]formField, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 256
		fields[i] = formField{label: label, input: in}
	}
	if len(fields) > 0 {
		fields[0].input.Focus()
	}
	return formModel{title: title, fields: fields}
}

func (f *formModel) set(i int, v string) {
	f.fields[i].input.SetValue(v)
}

func (f *formModel) placeholder(i int, v string) {
	f.fields[i].input.Placeholder = v
}

func (f *formModel) masked(i int) {
	f.fields[i].input.EchoMode = textinput.EchoPassword
	f.fields[i].input.EchoCharacter = '*'
}

func (f formModel) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *formModel) next() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *formModel) prev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

// view renders the inputs followed by extra read-only rows.
func (f formModel) view(extra ...[2]string) string {
	width := 0
	for _, field := range f.fields {
		width = max(width, len([]rune(field.label)))
	}
	for _, row := range extra {
		width = max(width, len([]rune(row[0])))
	}

	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(padText(field.label, width))
		b.WriteString(" │ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}
	for _, row := range extra {
		b.WriteString(padText(row[0], width))
		b.WriteString(" │ ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return b.String()
}
