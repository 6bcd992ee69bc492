package component

import "go-bunny-defense/internal/defs"

// Outcome is the result of a session.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "YOU WIN"
	case OutcomeLose:
		return "YOU LOSE"
	default:
		return "running"
	}
}

// WaveStats counts what happened to the enemies of one template.
type WaveStats struct {
	Name      string
	Spawned   int
	Processed int
	Killed    int
	Escaped   int
}

// TowerStats counts one tower type's contribution.
type TowerStats struct {
	Placed int
	Shots  int
	Hits   int
	Damage int
}

// Stats is the running tally shown on the game over screen.
type Stats struct {
	MaxWave int
	// Waves is keyed by wave number so the screen can list them in order.
	Waves       map[int]*WaveStats
	Towers      map[defs.TowerType]*TowerStats
	TotalDamage int
}

// NewStats creates an empty tally.
func NewStats() *Stats {
	return &Stats{
		Waves:  make(map[int]*WaveStats),
		Towers: make(map[defs.TowerType]*TowerStats),
	}
}

// Tower returns the entry of a tower type, creating it on first use.
func (s *Stats) Tower(t defs.TowerType) *TowerStats {
	ts, ok := s.Towers[t]
	if !ok {
		ts = &TowerStats{}
		s.Towers[t] = ts
	}
	return ts
}

// For returns the entry of a wave, creating it on first use.
func (s *Stats) For(wave int, name string) *WaveStats {
	ws, ok := s.Waves[wave]
	if !ok {
		ws = &WaveStats{Name: name}
		s.Waves[wave] = ws
	}
	return ws
}
