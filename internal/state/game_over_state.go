package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/ui"
	"go-bunny-defense/pkg/utils"
)

// GameOverState keeps the final board on screen under the stats panel.
// Once the panel settles, Space starts a new game and Escape returns to the
// menu.
type GameOverState struct {
	sm       *StateMachine
	finished *GameState
	panel    *ui.StatsPanel
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	_, outcome, _ := finished.game.Over()
	return &GameOverState{
		sm:       sm,
		finished: finished,
		panel:    ui.NewStatsPanel(outcome, finished.game.Stats()),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.panel.Update(deltaTime)
	if !s.panel.Settled() {
		return
	}
	session := s.finished.session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, session))
		return
	}
	if startPressed() {
		gs, err := NewGameState(s.sm, session)
		if err != nil {
			s.finished.log.WithError(err).Error("failed to restart game")
			s.sm.SetState(NewMenuState(s.sm, session))
			return
		}
		s.sm.SetState(gs)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)

	surface := s.finished.session.Surface
	surface.DrawRect(utils.Rect{W: config.ScreenWidth, H: config.ScreenHeight}, config.PauseShadeColor, 0)
	s.panel.Draw(surface)
	if s.panel.Settled() {
		surface.DrawText("SPACE plays again, ESC returns to the menu", config.MenuHintFontSize,
			utils.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight - 60}, config.MenuTextColor)
	}
}

func (s *GameOverState) Exit() {}
