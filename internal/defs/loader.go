// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/pkg/logger"
)

// Library is the static game data: wave templates in play order and tower
// stats by type.
type Library struct {
	Waves            []WaveDefinition
	Towers           map[TowerType]TowerDefinition
	TowerOrder       []TowerType
	EscapeLimit      int
	CountdownSeconds float64
}

// libraryFile is the JSON shape of a Library.
type libraryFile struct {
	Waves            []WaveDefinition  `json:"waves"`
	Towers           []TowerDefinition `json:"towers"`
	EscapeLimit      int               `json:"escape_limit"`
	CountdownSeconds float64           `json:"countdown_seconds"`
}

// DefaultLibrary returns the built-in five bunny waves and two flower towers.
func DefaultLibrary() *Library {
	return newLibrary(libraryFile{
		Waves:            defaultWaves(),
		Towers:           defaultTowers(),
		EscapeLimit:      config.EscapeLimit,
		CountdownSeconds: config.WaveCountdown,
	})
}

func newLibrary(f libraryFile) *Library {
	lib := &Library{
		Waves:            f.Waves,
		Towers:           make(map[TowerType]TowerDefinition, len(f.Towers)),
		EscapeLimit:      f.EscapeLimit,
		CountdownSeconds: f.CountdownSeconds,
	}
	for _, def := range f.Towers {
		if _, dup := lib.Towers[def.Type]; !dup {
			lib.TowerOrder = append(lib.TowerOrder, def.Type)
		}
		lib.Towers[def.Type] = def
	}
	if lib.EscapeLimit <= 0 {
		lib.EscapeLimit = config.EscapeLimit
	}
	if lib.CountdownSeconds <= 0 {
		lib.CountdownSeconds = config.WaveCountdown
	}
	return lib
}

// LoadLibrary reads a library from a JSON file and validates it.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read library file")
	}

	var f libraryFile
	if err := json.Unmarshal(file, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal library %s", path)
	}

	lib := newLibrary(f)
	if err := lib.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid library %s", path)
	}

	logger.For("defs").WithFields(logrus.Fields{
		"path":   path,
		"waves":  len(lib.Waves),
		"towers": len(lib.Towers),
	}).Info("loaded library")
	return lib, nil
}

// Validate rejects data the simulation cannot run with.
func (l *Library) Validate() error {
	if len(l.Waves) == 0 {
		return errors.New("no waves defined")
	}
	for i, w := range l.Waves {
		if w.Wave != i+1 {
			return errors.Errorf("wave %q has number %d, expected %d", w.Name, w.Wave, i+1)
		}
		if w.HP <= 0 || w.Count <= 0 || w.Rate <= 0 || w.Speed <= 0 {
			return errors.Errorf("wave %d: hp, count, rate and speed must be positive", w.Wave)
		}
		if _, ok := NamedColor(w.Color); !ok {
			return errors.Errorf("wave %d: unknown color %q", w.Wave, w.Color)
		}
	}
	if len(l.Towers) == 0 {
		return errors.New("no towers defined")
	}
	for _, t := range l.Towers {
		if t.Range <= 0 || t.FireInterval <= 0 || t.BulletSpeed <= 0 {
			return errors.Errorf("tower %s: range, fire interval and bullet speed must be positive", t.Type)
		}
		if t.Cost < 0 {
			return errors.Errorf("tower %s: negative cost", t.Type)
		}
		if t.Placed == config.PlacedNone {
			return errors.Errorf("tower %s: placed layer value must be non-zero", t.Type)
		}
		if _, ok := NamedColor(t.BulletColor); !ok {
			return errors.Errorf("tower %s: unknown bullet color %q", t.Type, t.BulletColor)
		}
	}
	return nil
}

// Wave returns the template for the 1-based wave number.
func (l *Library) Wave(number int) (WaveDefinition, bool) {
	if number < 1 || number > len(l.Waves) {
		return WaveDefinition{}, false
	}
	return l.Waves[number-1], true
}

// Tower returns the definition of t. An unknown type is a programmer error.
func (l *Library) Tower(t TowerType) TowerDefinition {
	def, ok := l.Towers[t]
	if !ok {
		panic(fmt.Sprintf("defs: unknown tower type %q", t))
	}
	return def
}

// TowerByPlaced returns the definition whose placed layer value is placed.
func (l *Library) TowerByPlaced(placed int) (TowerDefinition, bool) {
	for _, t := range l.TowerOrder {
		if def := l.Towers[t]; def.Placed == placed {
			return def, true
		}
	}
	return TowerDefinition{}, false
}
