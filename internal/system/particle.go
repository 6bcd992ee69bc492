package system

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/pool"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/internal/utils"
	putils "go-bunny-defense/pkg/utils"
)

const deathPaletteVariations = 8

// ParticleSystem owns the pooled particles emitted through emit_particle.
type ParticleSystem struct {
	particles *pool.Arena[component.Particle]
}

func NewParticleSystem(bus *event.Bus) *ParticleSystem {
	s := &ParticleSystem{particles: pool.NewArena[component.Particle](256)}
	bus.Subscribe("particle_system", s)
	return s
}

func (s *ParticleSystem) OnEvent(e event.Event) bool {
	if e.Name != event.EmitParticle {
		return false
	}
	batch, ok := event.Get[[]component.Particle](e, event.ArgParticles)
	if !ok {
		return false
	}
	for _, p := range batch {
		s.Emit(p)
	}
	return true
}

// Emit copies p into a free slot.
func (s *ParticleSystem) Emit(p component.Particle) {
	_, slot := s.particles.Acquire()
	*slot = p
	slot.OriginalTTL = p.TTL
	slot.Velocity = p.Direction.Scale(p.Speed)
}

// Active returns the number of live particles.
func (s *ParticleSystem) Active() int {
	return s.particles.Len()
}

func (s *ParticleSystem) Update(deltaTime float64) {
	s.particles.Each(func(id int, p *component.Particle) {
		p.TTL -= deltaTime
		if p.TTL <= 0 {
			s.particles.Release(id)
			return
		}
		if p.HasGravity {
			p.Velocity.X = p.Direction.X * p.Speed
			p.Velocity.Y += p.Gravity
		} else {
			p.Velocity = p.Direction.Scale(p.Speed)
		}
		p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
	})
}

func (s *ParticleSystem) Draw(q *render.Queue) {
	s.particles.Each(func(_ int, p *component.Particle) {
		c := p.Color
		c.A = p.Alpha()
		q.Circle(render.CategoryParticle, p.Position, p.Size, c, 0, 0)
	})
}

// Reset drops every particle.
func (s *ParticleSystem) Reset() {
	s.particles.Reset()
}

func randomHeading(rng *utils.PRNGService) putils.Vec2 {
	// whole multiples of 6 degrees
	rad := float64(rng.IntRange(0, 60)*6) * math.Pi / 180
	return putils.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func pickFloat(rng *utils.PRNGService, values ...float64) float64 {
	return values[rng.Choice(len(values))]
}

// FreezeSparkle is the icy particle a frozen enemy sheds each frame.
func FreezeSparkle(rng *utils.PRNGService, at putils.Vec2) component.Particle {
	return component.Particle{
		Position:   at,
		Direction:  randomHeading(rng),
		Speed:      pickFloat(rng, 70, 90, 150),
		Size:       pickFloat(rng, 3, 4, 5, 6),
		TTL:        pickFloat(rng, 0.2, 0.4, 0.5),
		Color:      config.FreezeParticleColors[rng.Choice(len(config.FreezeParticleColors))],
		HasGravity: true,
		Gravity:    config.FreezeParticleGravity,
	}
}

// DeathBurst scatters n particles in colors derived from the enemy's color.
func DeathBurst(rng *utils.PRNGService, at putils.Vec2, base color.RGBA, n int) []component.Particle {
	palette := DeathPalette(rng, base)
	burst := make([]component.Particle, 0, n)
	for i := 0; i < n; i++ {
		burst = append(burst, component.Particle{
			Position:  at,
			Direction: randomHeading(rng),
			Speed:     float64(rng.IntRange(200, 300)),
			Size:      float64(rng.IntRange(2, 7)),
			TTL:       pickFloat(rng, 0.2, 0.3, 0.4),
			Color:     palette[rng.Choice(len(palette))],
		})
	}
	return burst
}

// DeathPalette jitters hue, saturation and value of base and appends a fixed
// set of festive colors.
func DeathPalette(rng *utils.PRNGService, base color.RGBA) []color.RGBA {
	c, _ := colorful.MakeColor(color.RGBA{R: base.R, G: base.G, B: base.B, A: 255})
	h, sat, val := c.Hsv()

	palette := make([]color.RGBA, 0, deathPaletteVariations+len(config.DeathParticleExtraColors))
	for i := 0; i < deathPaletteVariations; i++ {
		hue := math.Mod(h+rng.FloatRange(-10, 10)+360, 360)
		v := colorful.Hsv(
			hue,
			putils.Clamp(sat+rng.FloatRange(-0.2, 0.2), 0, 1),
			putils.Clamp(val+rng.FloatRange(-0.2, 0.2), 0, 1),
		).Clamped()
		r, g, b := v.RGB255()
		palette = append(palette, color.RGBA{R: r, G: g, B: b, A: base.A})
	}
	return append(palette, config.DeathParticleExtraColors...)
}
