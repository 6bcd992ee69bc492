// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-bunny-defense/internal/assets"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/utils"
	prender "go-bunny-defense/pkg/render"
)

// State is one screen of the game.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine runs the current state and swaps states on request.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Session is what every screen shares for the lifetime of the process.
type Session struct {
	Library *defs.Library
	Sprites *assets.SpriteManager
	Fonts   *assets.Fonts
	Surface *prender.ScreenSurface
	Debug   bool

	// Seed fixes the map of the first game; later games use the following
	// seeds. Zero picks a fresh seed every time.
	Seed  int64
	games int64
}

// NewRng returns the generator for the next game.
func (s *Session) NewRng() *utils.PRNGService {
	seed := int64(0)
	if s.Seed != 0 {
		seed = s.Seed + s.games
	}
	s.games++
	return utils.NewPRNGService(seed)
}
