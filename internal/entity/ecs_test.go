package entity

import (
	"testing"

	"go-bunny-defense/internal/component"
)

func TestWorldKeepsSpawnOrder(t *testing.T) {
	w := NewWorld()
	var ids []component.EntityID
	for i := 0; i < 4; i++ {
		e := &component.Enemy{ID: w.NewEntity(), HP: 10}
		ids = append(ids, e.ID)
		w.AddEnemy(e)
	}

	if !w.RemoveEnemy(ids[1]) {
		t.Fatalf("Expected enemy %d to be removed", ids[1])
	}
	if w.RemoveEnemy(ids[1]) {
		t.Errorf("Expected second removal to report false")
	}

	want := []component.EntityID{ids[0], ids[2], ids[3]}
	for i, e := range w.Enemies {
		if e.ID != want[i] {
			t.Errorf("Expected enemy %d at %d, got %d", want[i], i, e.ID)
		}
	}
}

func TestLivingEnemiesSkipsDeadAndEscaped(t *testing.T) {
	w := NewWorld()
	w.AddEnemy(&component.Enemy{ID: w.NewEntity(), HP: 5})
	w.AddEnemy(&component.Enemy{ID: w.NewEntity(), HP: 0})
	w.AddEnemy(&component.Enemy{ID: w.NewEntity(), HP: 5, Escaped: true})

	living := w.LivingEnemies()
	if len(living) != 1 || living[0].ID != 1 {
		t.Errorf("Expected only enemy 1 alive, got %d enemies", len(living))
	}
	if _, ok := w.Enemy(3); !ok {
		t.Errorf("Expected lookup to find escaped enemy still in the set")
	}
}
