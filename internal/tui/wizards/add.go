package wizards

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/codetrack/internal/items"
)

const (
	fieldTitle = iota
	fieldURL
	fieldType
	fieldDescrip
	fieldStar
	fieldCount
)

// AddWizard collects a new item, or changes an existing one after Edit.
type AddWizard struct {
	id      string
	title   textinput.Model
	url     textinput.Model
	descrip textinput.Model
	typeIdx int
	tagged  bool
	focus   int
	err     string
}

// NewAddWizard creates an add form.
func NewAddWizard() *AddWizard {
	w := &AddWizard{}
	w.Init()
	return w
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 0
	return ti
}

// Init clears the form.
func (w *AddWizard) Init() tea.Cmd {
	w.id = ""
	w.title = newInput("What did you learn?")
	w.url = newInput("https://…")
	w.descrip = newInput("Details")
	w.typeIdx = 0
	w.tagged = false
	w.err = ""
	return w.setFocus(fieldTitle)
}

// Edit fills the form from it. Item then returns it with the edits applied.
func (w *AddWizard) Edit(it items.Item) tea.Cmd {
	cmd := w.Init()
	w.id = it.ID
	w.title.SetValue(it.Title)
	w.url.SetValue(it.URL)
	w.descrip.SetValue(it.Descrip)
	if i := slices.Index(items.Types, it.Type); i >= 0 {
		w.typeIdx = i
	}
	w.tagged = it.Tagged
	return cmd
}

// Editing returns the id of the item being edited, or "" for a new item.
func (w *AddWizard) Editing() string {
	return w.id
}

// HandleKey processes keyboard input.
func (w *AddWizard) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionClose, nil
	case "tab", "down":
		return ActionContinue, w.setFocus((w.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return ActionContinue, w.setFocus((w.focus + fieldCount - 1) % fieldCount)
	case "ctrl+s":
		return w.submit(), nil
	case "enter":
		if w.focus == fieldCount-1 {
			return w.submit(), nil
		}
		return ActionContinue, w.setFocus(w.focus + 1)
	}

	switch w.focus {
	case fieldType:
		switch msg.String() {
		case "left", "h":
			w.typeIdx = (w.typeIdx + len(items.Types) - 1) % len(items.Types)
		case "right", "l", " ":
			w.typeIdx = (w.typeIdx + 1) % len(items.Types)
		}
		return ActionContinue, nil
	case fieldStar:
		if msg.String() == " " {
			w.tagged = !w.tagged
		}
		return ActionContinue, nil
	}

	var cmd tea.Cmd
	in := w.input(w.focus)
	*in, cmd = in.Update(msg)
	return ActionContinue, cmd
}

// Item returns the item described by the form.
func (w *AddWizard) Item() items.Item {
	return items.Item{
		ID:      w.id,
		Title:   strings.TrimSpace(w.title.Value()),
		URL:     strings.TrimSpace(w.url.Value()),
		Descrip: strings.TrimSpace(w.descrip.Value()),
		Type:    items.Types[w.typeIdx],
		Tagged:  w.tagged,
	}
}

// SetError shows err, for failures found after submit.
func (w *AddWizard) SetError(err error) {
	w.err = strings.TrimPrefix(err.Error(), items.ErrInvalid.Error()+": ")
}

// Error returns any error message.
func (w *AddWizard) Error() string {
	return w.err
}

func (w *AddWizard) submit() Action {
	if err := w.Item().Validate(); err != nil {
		w.SetError(err)
		return ActionContinue
	}
	w.err = ""
	return ActionSubmit
}

func (w *AddWizard) input(field int) *textinput.Model {
	switch field {
	case fieldURL:
		return &w.url
	case fieldDescrip:
		return &w.descrip
	}
	return &w.title
}

func (w *AddWizard) setFocus(field int) tea.Cmd {
	w.focus = field
	for _, f := range []int{fieldTitle, fieldURL, fieldDescrip} {
		w.input(f).Blur()
	}
	if field == fieldTitle || field == fieldURL || field == fieldDescrip {
		return w.input(field).Focus()
	}
	return nil
}

// Render renders the form.
func (w *AddWizard) Render(width int) []string {
	heading := "Add item"
	if w.id != "" {
		heading = "Edit item"
	}
	title := lipgloss.NewStyle().Bold(true).
		Render(heading + " (tab: next field, ctrl+s: save, esc: cancel)")
	lines := []string{title, ""}

	star := "[ ]"
	if w.tagged {
		star = "[x]"
	}
	rows := []struct {
		label string
		value string
	}{
		{"Title", w.title.View()},
		{"URL", w.url.View()},
		{"Type", "◂ " + items.Types[w.typeIdx] + " ▸"},
		{"Notes", w.descrip.View()},
		{"Star", star},
	}
	for i, r := range rows {
		cur := "  "
		if i == w.focus {
			cur = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-6s %s", cur, r.label, r.value))
	}

	if w.err != "" {
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render("Error: ")+w.err)
	}
	return lines
}
