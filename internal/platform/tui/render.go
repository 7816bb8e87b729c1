package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/events"
)

// colorCodes maps core.Color to ANSI colour codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette holds the styles for one output. SSH sessions each get their own,
// built from the session's renderer so colours match the remote terminal.
type Palette struct {
	cells    map[core.Color]lipgloss.Style
	feedback map[events.Category]lipgloss.Style
	dim      lipgloss.Style
}

// NewPalette builds the styles for a renderer. A nil renderer means the
// process's own terminal.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	cells := make(map[core.Color]lipgloss.Style, len(colorCodes)+1)
	cells[core.ColorDefault] = r.NewStyle()
	for c, code := range colorCodes {
		cells[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}

	return Palette{
		cells: cells,
		feedback: map[events.Category]lipgloss.Style{
			events.CategoryCorrect:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			events.CategoryIncorrect:  r.NewStyle().Foreground(lipgloss.Color("208")),
			events.CategoryHintReveal: r.NewStyle().Foreground(lipgloss.Color("14")).Italic(true),
		},
		dim: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Feedback renders a feedback message in its category colour.
func (p Palette) Feedback(fb events.FeedbackEvent) string {
	style, ok := p.feedback[fb.Category]
	if !ok {
		return fb.Text
	}
	return style.Render(fb.Text)
}

// Dim renders secondary text.
func (p Palette) Dim(s string) string {
	return p.dim.Render(s)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			style, ok := p.cells[startColor]
			if !ok {
				style = p.cells[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
