// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/pkg/utils"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game underneath and shades it. P, Escape or the
// pause button resume.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	s.previousState.pause.Update(deltaTime)

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		s.previousState.pause.IsClicked(utils.Vec2{X: float64(x), Y: float64(y)})
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || clicked {
		s.previousState.pause.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	surface := s.previousState.session.Surface
	surface.DrawRect(utils.Rect{W: config.ScreenWidth, H: config.ScreenHeight}, config.PauseShadeColor, 0)
	surface.DrawText("PAUSED", config.PauseTitleFontSize,
		utils.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}, config.MenuTextColor)
	s.previousState.pause.Draw(surface)
}

func (s *PauseState) Exit() {}
