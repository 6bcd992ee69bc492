package system

import (
	"testing"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/defs"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/pkg/isomap"
	putils "go-bunny-defense/pkg/utils"
)

// enemyAt returns an enemy whose center sits exactly on p.
func enemyAt(id component.EntityID, hp int, p putils.Vec2) *component.Enemy {
	e := &component.Enemy{ID: id, HP: hp, MaxHP: hp}
	offset := e.Center().Sub(e.Position)
	e.Position = p.Sub(offset)
	return e
}

func TestFindWeakestInRange(t *testing.T) {
	origin := putils.Vec2{X: 100, Y: 100}
	near := func(dx float64) putils.Vec2 { return origin.Add(putils.Vec2{X: dx}) }

	tests := []struct {
		name    string
		enemies []*component.Enemy
		want    component.EntityID
	}{
		{"empty", nil, 0},
		{"lowest hp wins", []*component.Enemy{
			enemyAt(1, 50, near(10)),
			enemyAt(2, 20, near(20)),
			enemyAt(3, 30, near(5)),
		}, 2},
		{"tie goes to first", []*component.Enemy{
			enemyAt(1, 40, near(10)),
			enemyAt(2, 20, near(30)),
			enemyAt(3, 20, near(5)),
		}, 2},
		{"out of range ignored", []*component.Enemy{
			enemyAt(1, 10, near(200)),
			enemyAt(2, 90, near(49)),
		}, 2},
		{"dead and escaped ignored", []*component.Enemy{
			enemyAt(1, 0, near(1)),
			{ID: 2, HP: 5, Escaped: true},
			enemyAt(3, 70, near(2)),
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindWeakestInRange(tt.enemies, origin, 50)
			var id component.EntityID
			if got != nil {
				id = got.ID
			}
			if id != tt.want {
				t.Errorf("Expected enemy %d, got %d", tt.want, id)
			}
		})
	}
}

func newTowerFixture(t *testing.T) (*fixture, *TowerSystem, *component.Tower) {
	t.Helper()
	f := newFixture(t, "S..G")
	towers := NewTowerSystem(f.world, f.grid, f.bus, defs.DefaultLibrary(), f.rng)
	tw := towers.Build(defs.TowerSunFlower, f.grid.Tile(isomap.Index{Col: 1, Row: 0}))
	return f, towers, tw
}

func TestTowerBuildJittersInterval(t *testing.T) {
	_, _, tw := newTowerFixture(t)
	def := defs.DefaultLibrary().Tower(defs.TowerSunFlower)
	jitter := def.FireInterval / 10
	if tw.FireInterval < def.FireInterval-jitter || tw.FireInterval > def.FireInterval+jitter {
		t.Errorf("Expected interval within %v of %v, got %v", jitter, def.FireInterval, tw.FireInterval)
	}
	if tw.Range != def.Range {
		t.Errorf("Expected range %v, got %v", def.Range, tw.Range)
	}
}

func TestTowerBuildUnknownTypePanics(t *testing.T) {
	f := newFixture(t, "S..G")
	towers := NewTowerSystem(f.world, f.grid, f.bus, defs.DefaultLibrary(), f.rng)
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for unknown tower type")
		}
	}()
	towers.Build(defs.TowerType("cactus"), f.grid.Tile(isomap.Index{}))
}

func TestIdleTowerFiresAsSoonAsTargetAppears(t *testing.T) {
	f, towers, tw := newTowerFixture(t)

	towers.Tick(tw, tw.FireInterval*3)
	if tw.Elapsed != tw.FireInterval {
		t.Errorf("Expected idle timer held at %v, got %v", tw.FireInterval, tw.Elapsed)
	}
	if got := f.rec.count(event.ShootBullet); got != 0 {
		t.Errorf("Expected no shot without target, got %d", got)
	}

	target := putils.Vec2{X: 5, Y: 5}
	tw.SetTarget(7, target)
	towers.Tick(tw, 0.001)

	shot, ok := f.rec.last(event.ShootBullet)
	if !ok {
		t.Fatalf("Expected an immediate shot once a target is set")
	}
	if tw.Elapsed != 0 {
		t.Errorf("Expected timer reset after shooting, got %v", tw.Elapsed)
	}
	if got, _ := event.Get[putils.Vec2](shot, event.ArgTarget); got != target {
		t.Errorf("Expected target snapshot %v, got %v", target, got)
	}
	if got, _ := event.Get[putils.Vec2](shot, event.ArgOrigin); got != tw.Center {
		t.Errorf("Expected origin at tower center %v, got %v", tw.Center, got)
	}
	payload, _ := event.Get[component.BulletPayload](shot, event.ArgPayload)
	if payload.Damage != defs.DefaultLibrary().Tower(defs.TowerSunFlower).Damage {
		t.Errorf("Expected sun flower damage, got %d", payload.Damage)
	}
}

func TestTowerUpdateTargetsWeakestEnemy(t *testing.T) {
	f, towers, tw := newTowerFixture(t)
	strong := enemyAt(f.world.NewEntity(), 100, tw.Center.Add(putils.Vec2{X: 10}))
	weak := enemyAt(f.world.NewEntity(), 20, tw.Center.Add(putils.Vec2{X: 20}))
	f.world.AddEnemy(strong)
	f.world.AddEnemy(weak)

	towers.Update(0.001)
	if !tw.HasTarget || tw.TargetID != weak.ID {
		t.Errorf("Expected tower to target enemy %d, got %d", weak.ID, tw.TargetID)
	}

	weak.HP = 0
	strong.Escaped = true
	towers.Update(0.001)
	if tw.HasTarget {
		t.Errorf("Expected target cleared when nothing is in play")
	}
}
