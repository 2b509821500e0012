package form

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/choir/internal/core/styles"
)

// SelectOption is one choice in a SelectFormField.
type SelectOption struct {
	Value string
	Label string
}

// SelectFormField is a single-select form field wrapping list.Model.
type SelectFormField struct {
	list    list.Model
	options []SelectOption
	label   string
	focused bool
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.CommandStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.FormTitleStyle
		cursor = "> "
	}

	_, _ = fmt.Fprint(w, cursor+style.Render(item.label))
}

// NewSelectFormField creates a single-select field. defaultVal pre-selects
// the option with that value if found.
func NewSelectFormField(label string, options []SelectOption, defaultVal string) *SelectFormField {
	items := make([]list.Item, len(options))
	selected := 0
	for i, opt := range options {
		items[i] = selectItem{label: opt.Label, index: i}
		if opt.Value == defaultVal {
			selected = i
		}
	}

	const maxVisible = 6
	height := max(min(len(options), maxVisible), 1)

	l := list.New(items, selectDelegate{}, 40, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.Select(selected)

	return &SelectFormField{
		list:    l,
		options: options,
		label:   label,
	}
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectFormField) View() string {
	titleStyle := styles.FormTitleBlurredStyle
	borderStyle := styles.FormFieldStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(f.label), f.list.View())
	return borderStyle.Render(content)
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Focused() bool { return f.focused }

// Value returns the value of the highlighted option.
func (f *SelectFormField) Value() string {
	item, ok := f.list.SelectedItem().(selectItem)
	if !ok || item.index < 0 || item.index >= len(f.options) {
		return ""
	}
	return f.options[item.index].Value
}

func (f *SelectFormField) Label() string    { return f.label }
func (f *SelectFormField) Validate() string { return "" }

// selectItem is the list item used by SelectFormField.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }
