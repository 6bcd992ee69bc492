// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/app"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/internal/ui"
	"go-bunny-defense/pkg/logger"
	"go-bunny-defense/pkg/utils"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GameState runs a session: input, simulation and the HUD.
type GameState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	queue   *render.Queue
	buttons []*ui.TowerButton
	status  *ui.StatusIndicator
	wave    *ui.WaveIndicator
	pause   *ui.PauseButton
	log     *logrus.Entry
}

func NewGameState(sm *StateMachine, session *Session) (*GameState, error) {
	gameLogic, err := app.NewGame(session.Library, session.NewRng(), session.Debug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game")
	}
	return &GameState{
		sm:      sm,
		session: session,
		game:    gameLogic,
		queue:   render.NewQueue(),
		buttons: ui.NewTowerButtons(session.Library),
		status:  ui.NewStatusIndicator(),
		wave:    ui.NewWaveIndicator(),
		pause:   ui.NewPauseButton(config.ScreenWidth-28, 64, 10, config.MenuTextColor, config.MenuFocusColor),
		log:     logger.For("state"),
	}, nil
}

func (g *GameState) Enter() {
	g.pause.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.pause.Update(deltaTime)

	x, y := ebiten.CursorPosition()
	cursor := utils.Vec2{X: float64(x), Y: float64(y)}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.pause.IsClicked(cursor)) {
		g.pause.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.game.Debug = !g.game.Debug
		g.log.WithField("debug", g.game.Debug).Info("debug overlay toggled")
	}
	for i, key := range towerKeys {
		if i < len(g.buttons) && inpututil.IsKeyJustPressed(key) {
			g.toggleSelection(g.buttons[i])
		}
	}

	g.game.MoveCursor(cursor)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b, ok := ui.ButtonAt(g.buttons, cursor); ok {
			g.toggleSelection(b)
		} else {
			g.game.Click()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.Deselect()
	}

	g.game.Update(deltaTime)
	g.status.Update(deltaTime, g.game.Energy())

	if over, outcome, _ := g.game.Over(); over {
		g.log.WithField("outcome", outcome.String()).Info("session finished")
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) toggleSelection(b *ui.TowerButton) {
	if g.game.Selected != nil && *g.game.Selected == b.Type {
		g.game.Deselect()
		return
	}
	g.game.Select(b.Type)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s := g.session.Surface
	s.Begin(screen)

	g.game.Draw(g.queue)
	g.queue.Flush(s)
	g.drawHUD(s)
}

func (g *GameState) drawHUD(s render.Surface) {
	energy := g.game.Energy()
	for _, b := range g.buttons {
		selected := g.game.Selected != nil && *g.game.Selected == b.Type
		b.Draw(s, energy >= b.Cost, selected)
	}
	g.status.Draw(s, energy, g.game.Escaped(), g.session.Library.EscapeLimit)
	g.wave.Draw(s, g.game.WaveSystem.WaveNumber, len(g.session.Library.Waves))
	g.pause.Draw(s)
}

func (g *GameState) Exit() {}
