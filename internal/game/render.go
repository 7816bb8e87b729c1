package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/klokkia/internal/challenge"
	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/events"
	"github.com/vovakirdan/klokkia/internal/predator"
	"github.com/vovakirdan/klokkia/internal/session"
)

const (
	hudHeight    = 2
	legendHeight = 1
	panelWidth   = 26
	worldHalf    = 50.0
)

// Render draws the arena to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sess.Snapshot()

	g.renderHUD(dst, snap)

	mapW := dst.Width()
	if dst.Width() >= 70 {
		mapW -= panelWidth
	}
	area := core.NewRect(0, hudHeight, mapW, dst.Height()-hudHeight-legendHeight)
	if area.W < 12 || area.H < 6 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(area, core.ColorGray)
	g.renderClocks(dst, area, snap)
	g.renderThreats(dst, area, snap.Threats)
	px, py := toScreen(area, g.player)
	dst.SetColor(px, py, '@', core.ColorBrightCyan)

	if b, ok := g.Banner(); ok {
		color := core.ColorOrange
		if b.Kind == events.BannerCaught {
			color = core.ColorBrightRed
		}
		drawCentered(dst, area, area.Y+1, " "+b.Text+" ", color)
	}

	if mapW < dst.Width() {
		g.renderPanel(dst, core.NewRect(mapW, hudHeight, dst.Width()-mapW, area.H), snap)
	}
	g.renderLegend(dst, dst.Height()-1, snap.Legend)

	switch {
	case snap.Phase == core.PhaseReady.String():
		g.renderOverlay(dst, "Klokkia", "Press Enter to start")
	case snap.Phase == core.PhaseWon.String():
		g.renderOverlay(dst, fmt.Sprintf("Gewonnen! Score: %d", snap.Score), "Press R to play again")
	case snap.Paused:
		g.renderOverlay(dst, "Pauze", "Press Esc to continue")
	}
}

// toScreen maps a world position into the interior of the arena box.
func toScreen(area core.Rect, p core.Vec2) (int, int) {
	innerW := float64(area.W - 3)
	innerH := float64(area.H - 3)
	x := area.X + 1 + int((p.X+worldHalf)/(2*worldHalf)*innerW+0.5)
	y := area.Y + 1 + int((p.Z+worldHalf)/(2*worldHalf)*innerH+0.5)
	return core.Clamp(x, area.X+1, area.Right()-2), core.Clamp(y, area.Y+1, area.Bottom()-2)
}

func (g *Game) renderHUD(dst *core.Screen, snap session.Snapshot) {
	secs := int(snap.Elapsed.Seconds())
	hud := fmt.Sprintf(" Klokkia | Score: %d/%d | Tijd: %02d:%02d", snap.Score, snap.WinScore, secs/60, secs%60)
	if snap.Paused {
		hud += " | PAUZE"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderClocks(dst *core.Screen, area core.Rect, snap session.Snapshot) {
	activeID := -1
	if snap.Active != nil {
		activeID = snap.Active.ClockID
	}
	for _, clk := range snap.Clocks {
		x, y := toScreen(area, clk.Position)
		glyph := '◷'
		if clk.Style == challenge.StyleDigital {
			glyph = '▣'
		}
		color := core.ColorYellow
		if clk.ID == activeID {
			color = core.ColorBrightGreen
		}
		dst.SetColor(x, y, glyph, color)
	}
}

func (g *Game) renderThreats(dst *core.Screen, area core.Rect, threats []predator.Threat) {
	for _, th := range threats {
		x, y := toScreen(area, th.Position)
		r, _ := utf8.DecodeRuneInString(th.Name)
		dst.SetColor(x, y, r, core.ColorBrightRed)
	}
}

// renderPanel shows the face of the active clock.
func (g *Game) renderPanel(dst *core.Screen, r core.Rect, snap session.Snapshot) {
	dst.DrawBox(r, core.ColorGray)
	dst.DrawTextColor(r.X+2, r.Y, " Klok ", core.ColorBrightWhite)

	if snap.Active == nil {
		lines := []string{"Loop naar een klok", "(pijltjestoetsen)"}
		for i, l := range lines {
			drawCentered(dst, r, r.Y+2+i, l, core.ColorGray)
		}
		return
	}

	clk := snap.Clocks[snap.Active.ClockID]
	cx := r.X + r.W/2
	switch clk.Style {
	case challenge.StyleDigital:
		DrawDigital(dst, cx, r.Y+4, clk.Time)
	default:
		radius := min((r.H-6)/2, (r.W-4)/4)
		if radius >= 3 {
			DrawAnalog(dst, cx, r.Y+2+radius, radius, clk.Time)
		} else {
			DrawDigital(dst, cx, r.Y+4, clk.Time)
		}
	}

	info := fmt.Sprintf("Poging %d/%d", snap.Active.Attempts, snap.Active.MaxAttempts)
	drawCentered(dst, r, r.Bottom()-3, info, core.ColorWhite)
	if snap.Active.UsedHint {
		drawCentered(dst, r, r.Bottom()-2, "hulp gebruikt", core.ColorMagenta)
	}
}

func (g *Game) renderLegend(dst *core.Screen, y int, legend []predator.LegendEntry) {
	x := 1
	for _, e := range legend {
		label := e.Name
		color := core.ColorDefault
		switch e.Status {
		case events.LegendActive:
			label = "!" + label
			color = core.ColorBrightRed
		case events.LegendCrossed:
			label = "✗" + label
			color = core.ColorGray
		}
		dst.DrawTextColor(x, y, label, color)
		x += utf8.RuneCountInString(label) + 2
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

func drawCentered(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColor(x, y, text, c)
}
