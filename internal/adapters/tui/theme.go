package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/turskmind/internal/config"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles holds the lipgloss styles derived from a theme.
type styles struct {
	title    lipgloss.Style
	tagline  lipgloss.Style
	header   lipgloss.Style
	active   lipgloss.Style
	arrow    lipgloss.Style
	dim      lipgloss.Style
	help     lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	sidebar  lipgloss.Style
	pane     lipgloss.Style
	proverb  lipgloss.Style
	practice lipgloss.Color
}

func newStyles(t config.ThemeConfig) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorTitle)),
		tagline:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(t.ColorMuted)),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorAccent)).MarginBottom(1),
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorPractice)),
		arrow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorPractice)),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorMuted)),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorHelp)),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorSuccess)),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorWarning)),
		sidebar:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), false, true, false, false).BorderForeground(lipgloss.Color(t.ColorMuted)).PaddingRight(2),
		pane:     lipgloss.NewStyle().PaddingLeft(2),
		proverb:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(t.ColorTitle)),
		practice: lipgloss.Color(t.ColorPractice),
	}
}

// ackStyle picks the style for a save acknowledgment.
func (s styles) ack(success bool) lipgloss.Style {
	if success {
		return s.success
	}
	return s.warning
}
