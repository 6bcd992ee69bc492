// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/pkg/utils"
)

const (
	panelWidth     = 520.0
	panelMargin    = 16.0
	animationSpeed = 900.0 // pixels per second
	lineHeight     = 26.0
	titleHeight    = 72.0
)

var panelColor = color.RGBA{20, 20, 30, 220}

// StatsPanel is the end-of-game summary: the outcome and one line per wave
// with processed, killed and escaped counts. It slides up from the bottom
// of the screen when shown.
type StatsPanel struct {
	Outcome  component.Outcome
	lines    []string
	currentY float64
	targetY  float64
}

func NewStatsPanel(outcome component.Outcome, stats *component.Stats) *StatsPanel {
	p := &StatsPanel{
		Outcome:  outcome,
		lines:    StatLines(stats),
		currentY: config.ScreenHeight,
	}
	p.targetY = (config.ScreenHeight - p.height()) / 2
	return p
}

// StatLines formats the per-wave tally in wave order, then the towers in
// name order and the totals.
func StatLines(stats *component.Stats) []string {
	waves := make([]int, 0, len(stats.Waves))
	for n := range stats.Waves {
		waves = append(waves, n)
	}
	slices.Sort(waves)

	lines := make([]string, 0, len(waves)+1)
	total := component.WaveStats{}
	for _, n := range waves {
		w := stats.Waves[n]
		lines = append(lines, fmt.Sprintf("%d. %s: %d spawned, %d killed, %d escaped",
			n, w.Name, w.Spawned, w.Killed, w.Escaped))
		total.Processed += w.Processed
		total.Killed += w.Killed
		total.Escaped += w.Escaped
	}
	lines = append(lines, fmt.Sprintf("total: %d processed, %d killed, %d escaped",
		total.Processed, total.Killed, total.Escaped))

	towers := make([]defs.TowerType, 0, len(stats.Towers))
	for t := range stats.Towers {
		towers = append(towers, t)
	}
	slices.Sort(towers)
	for _, t := range towers {
		ts := stats.Towers[t]
		lines = append(lines, fmt.Sprintf("%s: %d placed, %d shots, %d hits, %d damage",
			t, ts.Placed, ts.Shots, ts.Hits, ts.Damage))
	}
	if len(towers) > 0 {
		lines = append(lines, fmt.Sprintf("damage dealt: %d", stats.TotalDamage))
	}
	return lines
}

func (p *StatsPanel) height() float64 {
	return titleHeight + float64(len(p.lines))*lineHeight + 2*panelMargin
}

// Update slides the panel toward its resting place.
func (p *StatsPanel) Update(deltaTime float64) {
	diff := p.targetY - p.currentY
	step := animationSpeed * deltaTime
	if math.Abs(diff) <= step {
		p.currentY = p.targetY
		return
	}
	p.currentY += math.Copysign(step, diff)
}

// Settled reports whether the slide-in finished.
func (p *StatsPanel) Settled() bool {
	return p.currentY == p.targetY
}

func (p *StatsPanel) Draw(s render.Surface) {
	rect := utils.Rect{X: (config.ScreenWidth - panelWidth) / 2, Y: p.currentY, W: panelWidth, H: p.height()}
	s.DrawRect(rect, panelColor, 0)

	title, accent := config.WinTextColor, config.WinColor
	if p.Outcome == component.OutcomeLose {
		title, accent = config.LoseTextColor, config.LoseColor
	}
	s.DrawRect(rect, accent, 3)

	cx := rect.Center().X
	drawShadowed(s, p.Outcome.String(), config.GameOverTitleFontSize, utils.Vec2{X: cx, Y: rect.Y + panelMargin + titleHeight/2}, title)
	y := rect.Y + panelMargin + titleHeight + lineHeight/2
	for _, line := range p.lines {
		s.DrawText(line, config.GameOverStatFontSize, utils.Vec2{X: cx, Y: y}, config.TextOneColor)
		y += lineHeight
	}
}
