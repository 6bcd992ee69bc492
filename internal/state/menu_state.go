// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/pkg/logger"
	"go-bunny-defense/pkg/utils"
)

// MenuState is the title screen. Space, Enter or a click starts a game.
type MenuState struct {
	sm      *StateMachine
	session *Session
	err     error
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !startPressed() {
		return
	}
	gs, err := NewGameState(m.sm, m.session)
	if err != nil {
		m.err = err
		logger.For("state").WithError(err).Error("failed to start game")
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuColor)
	s := m.session.Surface
	s.Begin(screen)

	center := utils.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	s.DrawText("BUNNY DEFENSE", config.MenuTitleFontSize, center.Sub(utils.Vec2{Y: 60}), config.MenuTextColor)
	s.DrawText("press SPACE to start", config.MenuHintFontSize, center.Add(utils.Vec2{Y: 30}), config.MenuFocusColor)
	s.DrawText("1, 2 pick a flower   P pauses   F3 debug", config.DefaultTextFontSize, center.Add(utils.Vec2{Y: 80}), config.MenuTextColor)
	if m.err != nil {
		s.DrawText(m.err.Error(), config.DefaultTextFontSize, center.Add(utils.Vec2{Y: 140}), config.LoseTextColor)
	}
}

func (m *MenuState) Exit() {}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
