package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/turskmind/internal/domain"
)

func (m Model) viewPractices() string {
	s := m.styles
	sections := []string{
		s.header.Render(domain.PracticesHeader),
		m.practiceSel.render(s),
		"",
	}

	switch {
	case m.running != nil:
		sections = append(sections,
			s.active.Render(m.status),
			"",
			renderBigTime(m.lastTick.Clock(), s.practice, m.paneWidth()),
			"",
			m.progress.ViewAs(m.lastTick.Progress),
			"",
			s.help.Render("esc stop"),
		)
	case m.finished:
		// The remaining-time slot is cleared once the countdown completes.
		sections = append(sections,
			m.progress.ViewAs(1.0),
			"",
			s.success.Render(m.status),
		)
	case m.status != "":
		sections = append(sections, s.ack(m.statusOK).Render(m.status))
	}

	sections = append(sections, "", s.dim.Render(domain.QuickTip), s.help.Render("↑/↓ choose · enter begin"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewAffirmations() string {
	s := m.styles
	width := m.paneWidth()

	modes := []domain.AffirmationMode{domain.AffirmationFromList, domain.AffirmationRandom}
	var toggle []string
	for _, mode := range modes {
		if mode == m.affMode {
			toggle = append(toggle, s.active.Render("(•) "+mode.Label()))
		} else {
			toggle = append(toggle, s.dim.Render("( ) "+mode.Label()))
		}
	}

	sections := []string{
		s.header.Render(domain.AffirmationsHeader),
		lipgloss.NewStyle().Width(width).Render(domain.AffirmationsIntro),
		"",
		strings.Join(toggle, "   "),
		"",
	}

	if m.affMode == domain.AffirmationFromList {
		sections = append(sections, m.affSel.render(s), "", s.help.Render("↑/↓ choose · s save · m switch mode"))
	} else {
		sections = append(sections, s.active.Render("✨ "+m.randomText), "", s.help.Render("g generate · s save · m switch mode"))
	}

	sections = append(sections, "", s.header.Render(domain.CustomPrompt))
	if m.editing {
		sections = append(sections, m.custom.View())
	} else {
		sections = append(sections, s.help.Render("e write your own"))
	}

	if m.ack != nil {
		sections = append(sections, "", s.ack(m.ack.IsSuccess()).Render(m.ack.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewProgress() string {
	s := m.styles
	sections := []string{
		s.header.Render(domain.ProgressHeader),
		s.dim.Render(domain.ProgressIntro),
		"",
	}

	if m.err != nil {
		sections = append(sections, s.warning.Render("Error: "+m.err.Error()))
	}
	if m.dashboard == nil {
		sections = append(sections, s.dim.Render("Loading..."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		renderChart(*m.dashboard, m.theme.ChartGradientStart, m.theme.ChartGradientEnd, m.paneWidth()),
		"",
		s.header.Render(domain.AchievementsHeader),
		s.success.Render(m.dashboard.Tier.Message()),
		s.dim.Render(fmt.Sprintf("Total sessions: %d", m.dashboard.Total)),
		"",
		s.help.Render("r refresh"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChart draws one horizontal bar per record, scaled to the largest count.
func renderChart(d domain.ProgressDashboard, from, to string, width int) string {
	labelWidth := 0
	for _, r := range d.Records {
		labelWidth = max(labelWidth, lipgloss.Width(r.Practice))
	}

	bar := progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())
	bar.Width = max(width-labelWidth-8, 10)

	top := d.MaxSessions()
	lines := make([]string, 0, len(d.Records))
	for _, r := range d.Records {
		frac := 0.0
		if top > 0 {
			frac = float64(r.SessionsCompleted) / float64(top)
		}
		label := lipgloss.NewStyle().Width(labelWidth).Render(r.Practice)
		lines = append(lines, fmt.Sprintf("%s  %s %d", label, bar.ViewAs(frac), r.SessionsCompleted))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewAbout() string {
	s := m.styles
	return lipgloss.JoinVertical(lipgloss.Left,
		s.header.Render(domain.AboutHeader),
		lipgloss.NewStyle().Width(m.paneWidth()).Render(domain.AboutText),
	)
}
