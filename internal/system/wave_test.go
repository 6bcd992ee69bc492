package system

import (
	"testing"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/event"
)

func oneWaveLibrary() *defs.Library {
	return &defs.Library{
		Waves: []defs.WaveDefinition{
			{Wave: 1, Name: "bunny", Speed: 50, HP: 10, Count: 2, Rate: 0.5, Reward: 1, Color: "pink"},
		},
		EscapeLimit:      3,
		CountdownSeconds: 1,
	}
}

func newWaveFixture() (*WaveSystem, *event.Bus, *recorder) {
	bus := event.NewBus()
	rec := &recorder{}
	bus.Subscribe("recorder", rec)
	return NewWaveSystem(oneWaveLibrary(), bus, component.NewStats()), bus, rec
}

func spawnAll(t *testing.T, waves *WaveSystem, rec *recorder) {
	t.Helper()
	run(3, 0.1, waves.Update)
	if waves.State != WaveWaiting {
		t.Fatalf("Expected waiting after issuing the wave, got %s", waves.State)
	}
	if got := rec.count(event.SpawnEnemy); got != 2 {
		t.Fatalf("Expected 2 spawn requests, got %d", got)
	}
	if got := rec.count(event.WaveNumberChanged); got != 1 {
		t.Fatalf("Expected 1 wave change, got %d", got)
	}
}

func escape(bus *event.Bus) {
	e := &component.Enemy{Wave: 1, Name: "bunny", Escaped: true}
	bus.Publish(event.New(event.EnemyEscaped, event.Args{event.ArgEnemy: e}))
	bus.Publish(event.New(event.EnemyProcessed, event.Args{event.ArgEnemy: e}))
}

func TestWaveCountdownStartsSpawning(t *testing.T) {
	waves, _, rec := newWaveFixture()
	waves.Update(0.5)
	if waves.State != WaveCounting || waves.WaveNumber != 0 {
		t.Fatalf("Expected still counting wave 0, got %s wave %d", waves.State, waves.WaveNumber)
	}
	waves.Update(0.6)
	if waves.State != WaveSpawning || waves.WaveNumber != 1 {
		t.Errorf("Expected spawning wave 1, got %s wave %d", waves.State, waves.WaveNumber)
	}
	changed, _ := rec.last(event.WaveNumberChanged)
	if n, _ := event.Get[int](changed, event.ArgWaveNumber); n != 1 {
		t.Errorf("Expected wave number 1 in event, got %d", n)
	}
}

func TestWaveEndsInLossWhenEscapesReachLimit(t *testing.T) {
	waves, bus, rec := newWaveFixture()
	spawnAll(t, waves, rec)

	escape(bus)
	escape(bus)
	bus.Publish(event.New(event.EnemyEscaped, event.Args{}))
	waves.Update(0.1)

	if !waves.Done() || waves.Outcome != component.OutcomeLose {
		t.Fatalf("Expected done with a loss, got %s %s", waves.State, waves.Outcome)
	}
	status, _ := rec.last(event.GameStatusChanged)
	if text, _ := event.Get[string](status, event.ArgStatusText); text != "YOU LOSE" {
		t.Errorf("Expected YOU LOSE, got %q", text)
	}

	run(5, 0.1, waves.Update)
	if got := rec.count(event.GameStatusChanged); got != 1 {
		t.Errorf("Expected exactly one status event, got %d", got)
	}
	if got := rec.count(event.SpawnEnemy); got != 2 {
		t.Errorf("Expected no spawns after done, got %d", got)
	}
}

func TestWaveEndsInWinAfterLastWave(t *testing.T) {
	waves, bus, rec := newWaveFixture()
	spawnAll(t, waves, rec)

	escape(bus)
	escape(bus)
	waves.Update(0.1)
	if waves.State != WaveCounting {
		t.Fatalf("Expected counting after both enemies processed, got %s", waves.State)
	}

	run(1.5, 0.1, waves.Update)
	if !waves.Done() || waves.Outcome != component.OutcomeWin {
		t.Fatalf("Expected done with a win, got %s %s", waves.State, waves.Outcome)
	}
	if got := rec.count(event.GameStatusChanged); got != 1 {
		t.Errorf("Expected exactly one status event, got %d", got)
	}
	status, _ := rec.last(event.GameStatusChanged)
	if o, _ := event.Get[component.Outcome](status, event.ArgOutcome); o != component.OutcomeWin {
		t.Errorf("Expected win outcome, got %s", o)
	}
}

func TestWaveStatsPerTemplate(t *testing.T) {
	waves, bus, rec := newWaveFixture()
	spawnAll(t, waves, rec)

	dead := &component.Enemy{Wave: 1, Name: "bunny"}
	bus.Publish(event.New(event.EnemyDied, event.Args{event.ArgEnemy: dead}))
	bus.Publish(event.New(event.EnemyProcessed, event.Args{event.ArgEnemy: dead}))
	escape(bus)

	ws := waves.stats.Waves[1]
	if ws == nil {
		t.Fatalf("Expected stats for wave 1")
	}
	if ws.Killed != 1 || ws.Escaped != 1 || ws.Processed != 2 {
		t.Errorf("Expected 1 killed 1 escaped 2 processed, got %+v", *ws)
	}
	if waves.stats.MaxWave != 1 {
		t.Errorf("Expected max wave 1, got %d", waves.stats.MaxWave)
	}
}
