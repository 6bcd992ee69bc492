// internal/system/projectile.go
package system

import (
	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/pool"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/internal/utils"
	putils "go-bunny-defense/pkg/utils"
)

// BulletSystem flies pooled bullets and resolves hits against enemy hurtboxes.
type BulletSystem struct {
	bullets *pool.Arena[component.Bullet]
	bus     *event.Bus
	rng     *utils.PRNGService
}

func NewBulletSystem(bus *event.Bus, rng *utils.PRNGService) *BulletSystem {
	s := &BulletSystem{
		bullets: pool.NewArena[component.Bullet](64),
		bus:     bus,
		rng:     rng,
	}
	bus.Subscribe("bullet_system", s)
	return s
}

func (s *BulletSystem) OnEvent(e event.Event) bool {
	if e.Name != event.ShootBullet {
		return false
	}
	origin, ok := event.Get[putils.Vec2](e, event.ArgOrigin)
	if !ok {
		return false
	}
	target, _ := event.Get[putils.Vec2](e, event.ArgTarget)
	payload, _ := event.Get[component.BulletPayload](e, event.ArgPayload)
	s.Fire(origin, target, payload)
	return true
}

// Fire launches a bullet from origin toward target and returns its slot. A
// shot at its own origin has no direction and is dropped with -1.
func (s *BulletSystem) Fire(origin, target putils.Vec2, payload component.BulletPayload) int {
	dir := target.Sub(origin)
	if dir.IsZero() {
		return -1
	}
	id, b := s.bullets.Acquire()
	*b = component.Bullet{
		Position:  origin,
		Direction: dir.Normalize(),
		Size:      config.BulletSize,
		TTL:       config.BulletTTL,
		Payload:   payload,
	}
	return id
}

// Active returns the number of bullets in flight.
func (s *BulletSystem) Active() int {
	return s.bullets.Len()
}

// Capacity returns how many bullet slots were ever allocated.
func (s *BulletSystem) Capacity() int {
	return s.bullets.Cap()
}

func (s *BulletSystem) Update(deltaTime float64) {
	s.bullets.Each(func(id int, b *component.Bullet) {
		b.TTL -= deltaTime
		if b.TTL <= 0 {
			s.bullets.Release(id)
			return
		}
		b.Position = b.Position.Add(b.Direction.Scale(b.Payload.Speed * deltaTime))
	})
}

// Collide gives every living enemy at most one hit per frame: the first
// bullet, in slot order, lying fully inside its hurtbox. The bullet is spent
// and a bullet_hit event carries the rolled damage.
func (s *BulletSystem) Collide(enemies []*component.Enemy) {
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		hurtbox := e.Hurtbox()
		hit := -1
		s.bullets.Each(func(id int, b *component.Bullet) {
			if hit < 0 && hurtbox.ContainsCircle(b.Position, b.Size) {
				hit = id
			}
		})
		if hit < 0 {
			continue
		}
		b, _ := s.bullets.Get(hit)
		payload := b.Payload
		s.bullets.Release(hit)
		s.bus.Publish(event.New(event.BulletHit, event.Args{
			event.ArgEnemy:   e,
			event.ArgDamage:  RollDamage(s.rng, payload.Damage),
			event.ArgPayload: payload,
		}))
	}
}

// Draw queues an outline and a fill circle per bullet.
func (s *BulletSystem) Draw(q *render.Queue) {
	s.bullets.Each(func(_ int, b *component.Bullet) {
		q.Circle(render.CategoryBulletOuter, b.Position, b.Size*config.BulletOutlineScale, config.BulletOutline, 0, 0)
		q.Circle(render.CategoryBulletInner, b.Position, b.Size, b.Payload.Color, 0, 0)
	})
}

// Reset drops every bullet.
func (s *BulletSystem) Reset() {
	s.bullets.Reset()
}
