// internal/system/wave.go
package system

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/pkg/logger"
	putils "go-bunny-defense/pkg/utils"
)

// WaveState is the scheduler phase.
type WaveState int

const (
	WaveCounting WaveState = iota
	WaveSpawning
	WaveWaiting
	WaveDone
)

func (s WaveState) String() string {
	switch s {
	case WaveCounting:
		return "counting"
	case WaveSpawning:
		return "spawning"
	case WaveWaiting:
		return "waiting"
	default:
		return "done"
	}
}

// WaveSystem paces the waves: count down, spawn the wave's enemies on its
// interval, wait until all of them are processed, repeat. It declares the
// outcome once the waves run out or too many enemies escaped.
type WaveSystem struct {
	lib   *defs.Library
	bus   *event.Bus
	stats *component.Stats
	log   *logrus.Entry

	State      WaveState
	Countdown  float64
	WaveNumber int
	Issued     int // spawn requests sent for the current wave
	Processed  int // enemies of the current wave that died or escaped
	Killed     int
	Escaped    int
	Outcome    component.Outcome

	spawnElapsed float64
}

func NewWaveSystem(lib *defs.Library, bus *event.Bus, stats *component.Stats) *WaveSystem {
	s := &WaveSystem{
		lib:       lib,
		bus:       bus,
		stats:     stats,
		log:       logger.For("wave"),
		State:     WaveCounting,
		Countdown: lib.CountdownSeconds,
	}
	bus.Subscribe("wave_system", s)
	return s
}

func (s *WaveSystem) OnEvent(e event.Event) bool {
	if s.State == WaveDone {
		return false
	}
	tpl, ok := s.lib.Wave(s.WaveNumber)
	if !ok {
		return false
	}
	wave, name := tpl.Wave, tpl.Name
	if enemy, ok := event.Get[*component.Enemy](e, event.ArgEnemy); ok {
		wave, name = enemy.Wave, enemy.Name
	}

	switch e.Name {
	case event.EnemyProcessed:
		s.Processed++
		s.stats.For(wave, name).Processed++
		return true
	case event.EnemyDied:
		s.Killed++
		s.stats.For(wave, name).Killed++
		return true
	case event.EnemyEscaped:
		s.Escaped++
		s.stats.For(wave, name).Escaped++
		return true
	}
	return false
}

// Done reports whether an outcome was declared.
func (s *WaveSystem) Done() bool {
	return s.State == WaveDone
}

// Update runs the current phase, then checks the terminal conditions. Running
// out of waves is checked before escapes; either one ends the scheduler with
// a single game_status_changed event.
func (s *WaveSystem) Update(deltaTime float64) {
	if s.State == WaveDone {
		return
	}

	switch s.State {
	case WaveCounting:
		s.updateCounting(deltaTime)
	case WaveSpawning:
		s.updateSpawning(deltaTime)
	case WaveWaiting:
		s.updateWaiting()
	}

	switch {
	case s.WaveNumber > len(s.lib.Waves):
		s.finish(component.OutcomeWin)
	case s.Escaped >= s.lib.EscapeLimit:
		s.finish(component.OutcomeLose)
	}
}

func (s *WaveSystem) updateCounting(deltaTime float64) {
	s.Countdown -= deltaTime
	if s.Countdown > 0 {
		return
	}
	s.Countdown = s.lib.CountdownSeconds
	s.WaveNumber++
	s.spawnElapsed = 0
	s.State = WaveSpawning
	if s.WaveNumber > s.stats.MaxWave && s.WaveNumber <= len(s.lib.Waves) {
		s.stats.MaxWave = s.WaveNumber
	}

	s.log.WithField("wave", s.WaveNumber).Info("wave started")
	s.bus.Publish(event.New(event.WaveNumberChanged, event.Args{event.ArgWaveNumber: s.WaveNumber}))
}

func (s *WaveSystem) updateSpawning(deltaTime float64) {
	tpl, ok := s.lib.Wave(s.WaveNumber)
	if !ok {
		return
	}

	s.spawnElapsed += deltaTime
	if s.spawnElapsed >= tpl.Rate {
		s.spawnElapsed = 0
		s.Issued++
		s.bus.Publish(event.New(event.SpawnEnemy, event.Args{event.ArgTemplate: tpl}))
	}
	if s.Issued >= tpl.Count {
		s.State = WaveWaiting
	}
}

func (s *WaveSystem) updateWaiting() {
	tpl, ok := s.lib.Wave(s.WaveNumber)
	if !ok {
		return
	}
	if s.Processed >= tpl.Count {
		s.Processed = 0
		s.Issued = 0
		s.State = WaveCounting
	}
}

func (s *WaveSystem) finish(outcome component.Outcome) {
	s.State = WaveDone
	s.Outcome = outcome
	s.log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"wave":    s.WaveNumber,
		"killed":  s.Killed,
		"escaped": s.Escaped,
	}).Info("game over")
	s.bus.Publish(event.New(event.GameStatusChanged, event.Args{
		event.ArgOutcome:    outcome,
		event.ArgStatusText: outcome.String(),
	}))
}

// Draw queues the countdown while counting, the wave's name otherwise.
func (s *WaveSystem) Draw(q *render.Queue) {
	if s.State == WaveDone {
		return
	}

	var (
		text  string
		size  int
		fill  = config.GoalOuterColor
		below float64
	)
	if s.State == WaveCounting {
		text = fmt.Sprintf("wave %d: %d", s.WaveNumber+1, int(math.Ceil(s.Countdown)))
		size = config.WaveTextFontSize
		below = config.WaveTextBottomOffset
	} else {
		tpl, ok := s.lib.Wave(s.WaveNumber)
		if !ok {
			return
		}
		text = tpl.Name
		size = config.WaveNameFontSize
		fill = tpl.RGBA()
		below = config.WaveNameBottomOffset
	}

	pos := putils.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight - below}
	shadow := pos.Add(putils.Vec2{X: config.WaveTextShadowOffset, Y: config.WaveTextShadowOffset})
	q.Text(render.CategoryWaveTextShadow, text, size, shadow, config.ShadowColor)
	q.Text(render.CategoryWaveText, text, size, pos, fill)
}
