package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/turskmind/internal/config"
)

// selectList is an up/down cursor over a list of labels. It is embedded by
// the practice and affirmation panes and by the standalone picker.
type selectList struct {
	items  []string
	cursor int
}

func newSelectList(items []string) selectList {
	return selectList{items: items}
}

func (l *selectList) up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *selectList) down() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

func (l selectList) selected() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.cursor]
}

func (l selectList) render(s styles) string {
	var b strings.Builder
	for i, item := range l.items {
		if i == l.cursor {
			b.WriteString(fmt.Sprintf("%s %s\n", s.arrow.Render("▸"), s.active.Render(item)))
		} else {
			b.WriteString(s.dim.Render("  "+item) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// PickerResult holds the outcome of a picker interaction.
type PickerResult struct {
	Index   int
	Aborted bool
}

type pickerModel struct {
	title   string
	list    selectList
	footer  string
	aborted bool
	styles  styles
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.list.up()
		case "down", "j":
			m.list.down()
		case "enter":
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.styles.title.Render("  "+m.title) + "\n\n")
	for _, line := range strings.Split(m.list.render(m.styles), "\n") {
		b.WriteString("  " + line + "\n")
	}

	if m.footer != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("  "+m.footer) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render("  ↑/↓ navigate · enter select · esc back") + "\n")

	return b.String()
}

// RunPicker launches an interactive arrow-key picker and returns the selected index.
func RunPicker(title string, items []string, footer string, theme *config.ThemeConfig) PickerResult {
	m := pickerModel{
		title:  title,
		list:   newSelectList(items),
		footer: footer,
		styles: newStyles(resolveTheme(theme)),
	}

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}

	final := result.(pickerModel)
	if final.aborted {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Index: final.list.cursor}
}
