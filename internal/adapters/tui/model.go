// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/turskmind/internal/config"
	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

// AffirmationSource provides the affirmation catalog and save acknowledgments.
type AffirmationSource interface {
	List() []string
	Random() string
	Save(text string) domain.Acknowledgment
	SaveCustom(text string) (domain.Acknowledgment, error)
}

// ProgressSource provides the progress dashboard.
type ProgressSource interface {
	Dashboard(ctx context.Context) (*domain.ProgressDashboard, error)
	CompletedThisRun(ctx context.Context) (int, error)
}

// Deps bundles the services the interface drives.
type Deps struct {
	Runner       ports.PracticeRunner
	Affirmations AffirmationSource
	Progress     ProgressSource
}

// section is one entry of the sidebar menu.
type section int

const (
	sectionPractices section = iota
	sectionAffirmations
	sectionProgress
	sectionAbout
	sectionCount
)

func (s section) label() string {
	switch s {
	case sectionPractices:
		return "Practices 🧘‍♀️"
	case sectionAffirmations:
		return "Affirmations 🌱"
	case sectionProgress:
		return "Progress 📊"
	case sectionAbout:
		return "About ℹ️"
	}
	return ""
}

const sidebarWidth = 22

// tickMsg carries a tick from the running countdown.
type tickMsg struct {
	ch   <-chan domain.Tick
	tick domain.Tick
}

// ticksClosedMsg is sent when the countdown channel closes.
type ticksClosedMsg struct {
	ch <-chan domain.Tick
}

// dashboardMsg carries a freshly loaded dashboard.
type dashboardMsg struct {
	dashboard *domain.ProgressDashboard
	completed int
	err       error
}

// waitForTick blocks on the countdown channel for the next tick.
func waitForTick(ch <-chan domain.Tick) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return ticksClosedMsg{ch: ch}
		}
		return tickMsg{ch: ch, tick: t}
	}
}

// cancelledMsg reports the result of stopping the countdown.
type cancelledMsg struct {
	err error
}

// cancelPracticeCmd stops the running countdown off the update loop.
func cancelPracticeCmd(ctx context.Context, runner ports.PracticeRunner) tea.Cmd {
	return func() tea.Msg {
		_, err := runner.CancelPractice(ctx)
		if errors.Is(err, domain.ErrNoActiveSession) {
			err = nil
		}
		return cancelledMsg{err: err}
	}
}

func loadDashboardCmd(ctx context.Context, src ProgressSource) tea.Cmd {
	return func() tea.Msg {
		d, err := src.Dashboard(ctx)
		if err != nil {
			return dashboardMsg{err: err}
		}
		n, err := src.CompletedThisRun(ctx)
		return dashboardMsg{dashboard: d, completed: n, err: err}
	}
}

// Model represents the TUI state.
type Model struct {
	ctx     context.Context
	deps    Deps
	theme   config.ThemeConfig
	styles  styles
	width   int
	height  int
	section section

	// Practices
	practices   []domain.Practice
	practiceSel selectList
	running     *domain.PracticeSession
	ticks       <-chan domain.Tick
	lastTick    domain.Tick
	finished    bool
	status      string
	statusOK    bool
	progress    progress.Model

	// Affirmations
	affMode    domain.AffirmationMode
	affSel     selectList
	randomText string
	editing    bool
	custom     textarea.Model
	ack        *domain.Acknowledgment

	// Progress
	dashboard        *domain.ProgressDashboard
	completedThisRun int
	err              error
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context, deps Deps, theme *config.ThemeConfig) Model {
	resolved := resolveTheme(theme)

	practices := domain.Practices()
	labels := make([]string, len(practices))
	for i, p := range practices {
		labels[i] = p.Label
	}

	ta := textarea.New()
	ta.Placeholder = "Write your affirmation..."
	ta.CharLimit = 280
	ta.ShowLineNumbers = false
	ta.SetHeight(3)

	return Model{
		ctx:         ctx,
		deps:        deps,
		theme:       resolved,
		styles:      newStyles(resolved),
		practices:   practices,
		practiceSel: newSelectList(labels),
		progress:    progress.New(progress.WithGradient(resolved.ProgressGradientStart, resolved.ProgressGradientEnd)),
		affMode:     domain.AffirmationFromList,
		affSel:      newSelectList(deps.Affirmations.List()),
		custom:      ta,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.theme.Title),
		loadDashboardCmd(m.ctx, m.deps.Progress),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.paneWidth()
		m.progress.Width = max(w-4, 10)
		m.custom.SetWidth(max(w-4, 20))
	case tickMsg:
		if msg.ch != m.ticks {
			return m, nil
		}
		m.lastTick = msg.tick
		return m, waitForTick(m.ticks)
	case ticksClosedMsg:
		if msg.ch != m.ticks {
			return m, nil
		}
		m.finishPractice()
		return m, loadDashboardCmd(m.ctx, m.deps.Progress)
	case cancelledMsg:
		if msg.err != nil {
			m.status, m.statusOK = msg.err.Error(), false
		}
		return m, nil
	case dashboardMsg:
		m.err = msg.err
		if msg.dashboard != nil {
			m.dashboard = msg.dashboard
			m.completedThisRun = msg.completed
		}
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.custom, cmd = m.custom.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m, tea.Quit
	}
	if m.editing {
		return m.updateEditing(msg)
	}

	switch k {
	case "q":
		return m, tea.Quit
	case "tab":
		m.section = (m.section + 1) % sectionCount
	case "shift+tab":
		m.section = (m.section + sectionCount - 1) % sectionCount
	case "1", "2", "3", "4":
		m.section = section(k[0] - '1')
	default:
		switch m.section {
		case sectionPractices:
			return m.updatePractices(k)
		case sectionAffirmations:
			return m.updateAffirmations(k)
		case sectionProgress:
			if k == "r" {
				return m, loadDashboardCmd(m.ctx, m.deps.Progress)
			}
		}
	}
	return m, nil
}

func (m Model) updatePractices(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		m.practiceSel.up()
	case "down", "j":
		m.practiceSel.down()
	case "enter":
		if m.running != nil {
			m.status, m.statusOK = domain.ErrSessionAlreadyActive.Error(), false
			return m, nil
		}
		p := m.practices[m.practiceSel.cursor]
		sub, err := m.deps.Runner.StartPractice(m.ctx, p.Key)
		if err != nil {
			m.status, m.statusOK = err.Error(), false
			return m, nil
		}
		session := sub.Session
		m.running = &session
		m.ticks = sub.Ticks
		m.lastTick = domain.Tick{Remaining: session.Duration}
		m.finished = false
		m.status, m.statusOK = domain.StartMessage(session.Label), true
		return m, waitForTick(m.ticks)
	case "esc":
		if m.running == nil {
			return m, nil
		}
		return m, cancelPracticeCmd(m.ctx, m.deps.Runner)
	}
	return m, nil
}

// finishPractice records the end of the subscribed countdown.
func (m *Model) finishPractice() {
	if m.running == nil {
		return
	}
	if m.lastTick.Done {
		m.finished = true
		m.status, m.statusOK = domain.CompletionMessage(m.running.Label), true
	} else {
		m.status, m.statusOK = fmt.Sprintf("Stopped '%s'. Come back when you are ready. 🌾", m.running.Label), false
	}
	m.running = nil
	m.ticks = nil
}

func (m Model) updateAffirmations(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "m":
		m.ack = nil
		if m.affMode == domain.AffirmationFromList {
			m.affMode = domain.AffirmationRandom
			if m.randomText == "" {
				m.randomText = m.deps.Affirmations.Random()
			}
		} else {
			m.affMode = domain.AffirmationFromList
		}
	case "up", "k":
		if m.affMode == domain.AffirmationFromList {
			m.affSel.up()
		}
	case "down", "j":
		if m.affMode == domain.AffirmationFromList {
			m.affSel.down()
		}
	case "g":
		if m.affMode == domain.AffirmationRandom {
			m.randomText = m.deps.Affirmations.Random()
			m.ack = nil
		}
	case "s", "enter":
		ack := m.deps.Affirmations.Save(m.currentAffirmation())
		m.ack = &ack
	case "e":
		m.editing = true
		m.ack = nil
		cmd := m.custom.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.custom.Blur()
		return m, nil
	case "ctrl+s":
		ack, err := m.deps.Affirmations.SaveCustom(m.custom.Value())
		m.ack = &ack
		if err == nil {
			m.custom.Reset()
			m.editing = false
			m.custom.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.custom, cmd = m.custom.Update(msg)
	return m, cmd
}

func (m Model) currentAffirmation() string {
	if m.affMode == domain.AffirmationRandom {
		return m.randomText
	}
	return m.affSel.selected()
}

func (m Model) paneWidth() int {
	return max(m.width-sidebarWidth-6, 30)
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(domain.AppTitle),
		m.styles.tagline.Render(domain.AppTagline),
	)

	var pane string
	switch m.section {
	case sectionPractices:
		pane = m.viewPractices()
	case sectionAffirmations:
		pane = m.viewAffirmations()
	case sectionProgress:
		pane = m.viewProgress()
	case sectionAbout:
		pane = m.viewAbout()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.sidebar.Width(sidebarWidth).Render(m.viewSidebar()),
		m.styles.pane.Width(m.paneWidth()).Render(pane),
	)

	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.proverb.Render(domain.Proverb),
		m.styles.help.Render(m.statusLine()),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewSidebar() string {
	lines := []string{m.styles.header.Render(domain.MenuHeader)}
	for s := section(0); s < sectionCount; s++ {
		if s == m.section {
			lines = append(lines, m.styles.arrow.Render("▸ ")+m.styles.active.Render(s.label()))
		} else {
			lines = append(lines, m.styles.dim.Render("  "+s.label()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) statusLine() string {
	line := fmt.Sprintf("%s This run: %d completed", m.theme.IconApp, m.completedThisRun)
	if m.editing {
		return line + " · ctrl+s save · esc done"
	}
	return line + " · tab switch section · q quit"
}
