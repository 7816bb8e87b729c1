package game

import (
	"math"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/dutch"
)

// cellAspect compensates for terminal cells being about twice as tall as wide.
const cellAspect = 2.0

// DrawAnalog draws a clock face of the given radius (in rows) centred on
// (cx, cy), with the hour and minute hands set to t.
func DrawAnalog(dst *core.Screen, cx, cy, radius int, t dutch.TimeOfDay) {
	r := float64(radius)
	for k := 0; k < 60; k++ {
		a := float64(k) * math.Pi / 30
		glyph, color := '·', core.ColorGray
		if k%5 == 0 {
			glyph, color = '•', core.ColorWhite
		}
		x, y := polar(cx, cy, a, r)
		dst.SetColor(x, y, glyph, color)
	}

	minuteAngle := float64(t.Minutes) * math.Pi / 30
	hourAngle := (float64(t.Hours%12) + float64(t.Minutes)/60) * math.Pi / 6

	drawHand(dst, cx, cy, minuteAngle, r-1, '*', core.ColorBrightCyan)
	drawHand(dst, cx, cy, hourAngle, r*0.55, '#', core.ColorBrightYellow)
	dst.SetColor(cx, cy, 'o', core.ColorBrightWhite)
}

func drawHand(dst *core.Screen, cx, cy int, angle, length float64, glyph rune, c core.Color) {
	for d := 0.5; d <= length; d += 0.25 {
		x, y := polar(cx, cy, angle, d)
		dst.SetColor(x, y, glyph, c)
	}
}

// polar converts a clockwise angle from twelve o'clock and a distance in
// rows to a screen cell.
func polar(cx, cy int, angle, dist float64) (int, int) {
	x := cx + int(math.Round(math.Sin(angle)*dist*cellAspect))
	y := cy - int(math.Round(math.Cos(angle)*dist))
	return x, y
}

// DrawDigital draws the time as HH:MM in a small box centred on (cx, cy).
func DrawDigital(dst *core.Screen, cx, cy int, t dutch.TimeOfDay) {
	text := t.String()
	box := core.NewRect(cx-len(text)/2-2, cy-1, len(text)+4, 3)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, cy, text, core.ColorBrightGreen)
}
