// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/assets"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/state"
	"go-bunny-defense/pkg/logger"
	prender "go-bunny-defense/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

type options struct {
	configPath string
	spriteDir  string
	seed       int64
	debug      bool
	pprofAddr  string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "JSON file with waves and towers (built-in set when empty)")
	flag.StringVar(&opts.spriteDir, "sprites", "assets/sprites", "directory searched for <key>.png sprite overrides")
	flag.Int64Var(&opts.seed, "seed", 0, "map seed, 0 picks one at random")
	flag.BoolVar(&opts.debug, "debug", false, "start with the debug overlay")
	flag.StringVar(&opts.pprofAddr, "pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger.Init()
	if err := run(opts); err != nil {
		logger.For("main").WithError(err).Fatal("game exited with an error")
	}
}

// run owns every resource of the process so deferred cleanup happens before
// main decides the exit status.
func run(opts options) error {
	log := logger.For("main")

	if opts.pprofAddr != "" {
		go func() {
			log.WithError(http.ListenAndServe(opts.pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	lib := defs.DefaultLibrary()
	if opts.configPath != "" {
		loaded, err := defs.LoadLibrary(opts.configPath)
		if err != nil {
			return errors.Wrap(err, "failed to load game data")
		}
		lib = loaded
	}

	fonts, err := assets.NewFonts()
	if err != nil {
		return errors.Wrap(err, "failed to load fonts")
	}
	sprites := assets.NewSpriteManager(opts.spriteDir, lib)
	defer sprites.Cleanup()

	session := &state.Session{
		Library: lib,
		Sprites: sprites,
		Fonts:   fonts,
		Surface: prender.NewScreenSurface(sprites, fonts),
		Debug:   opts.debug,
		Seed:    opts.seed,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	log.WithFields(logrus.Fields{
		"waves":  len(lib.Waves),
		"towers": len(lib.TowerOrder),
		"seed":   opts.seed,
	}).Info("starting")

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Bunny Defense")
	if err := ebiten.RunGame(app); err != nil {
		return errors.Wrap(err, "game loop failed")
	}
	return nil
}
