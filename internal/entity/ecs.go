// internal/entity/ecs.go
package entity

import "go-bunny-defense/internal/component"

// World owns the long lived entities. Enemies keep spawn order and towers keep
// placement order so every pass over them is deterministic.
type World struct {
	NextID  component.EntityID
	Enemies []*component.Enemy
	Towers  []*component.Tower
	Stats   *component.Stats
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		Stats:  component.NewStats(),
	}
}

func (w *World) NewEntity() component.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy appends e to the active set.
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// RemoveEnemy drops the enemy with the given id and reports whether it was
// present.
func (w *World) RemoveEnemy(id component.EntityID) bool {
	for i, e := range w.Enemies {
		if e.ID == id {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Enemy looks up an active enemy.
func (w *World) Enemy(id component.EntityID) (*component.Enemy, bool) {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// LivingEnemies returns the enemies still in play, in spawn order.
func (w *World) LivingEnemies() []*component.Enemy {
	living := make([]*component.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.Alive() {
			living = append(living, e)
		}
	}
	return living
}

// AddTower appends t to the placed towers.
func (w *World) AddTower(t *component.Tower) {
	w.Towers = append(w.Towers, t)
}
