package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// segmentGlyphs maps digits and the colon to a 3-line segment display.
var segmentGlyphs = map[rune][3]string{
	'0': {" _ ", "| |", "|_|"},
	'1': {"   ", "  |", "  |"},
	'2': {" _ ", " _|", "|_ "},
	'3': {" _ ", " _|", " _|"},
	'4': {"   ", "|_|", "  |"},
	'5': {" _ ", "|_ ", " _|"},
	'6': {" _ ", "|_ ", "|_|"},
	'7': {" _ ", "  |", "  |"},
	'8': {" _ ", "|_|", "|_|"},
	'9': {" _ ", "|_|", " _|"},
	':': {" ", ".", "."},
}

// renderBigTime renders an MM:SS string as a segment display. Narrow
// terminals get a single bold line instead.
func renderBigTime(timeStr string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < 30 {
		return style.Render(timeStr)
	}

	var lines [3]strings.Builder
	for _, ch := range timeStr {
		glyph, ok := segmentGlyphs[ch]
		if !ok {
			continue
		}
		for i := range lines {
			if lines[i].Len() > 0 {
				lines[i].WriteByte(' ')
			}
			lines[i].WriteString(glyph[i])
		}
	}

	styled := make([]string, len(lines))
	for i := range lines {
		styled[i] = style.Render(lines[i].String())
	}
	return strings.Join(styled, "\n")
}
