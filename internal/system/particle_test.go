package system

import (
	"image/color"
	"testing"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/internal/utils"
	putils "go-bunny-defense/pkg/utils"
)

func TestParticlesEmitFadeAndExpire(t *testing.T) {
	bus := event.NewBus()
	particles := NewParticleSystem(bus)
	rng := utils.NewPRNGService(3)

	burst := DeathBurst(rng, putils.Vec2{X: 50, Y: 50}, color.RGBA{R: 255, G: 192, B: 203, A: 255}, 10)
	bus.Publish(event.New(event.EmitParticle, event.Args{event.ArgParticles: burst}))
	if particles.Active() != 10 {
		t.Fatalf("Expected 10 particles, got %d", particles.Active())
	}

	run(0.5, 0.05, particles.Update)
	if particles.Active() != 0 {
		t.Errorf("Expected every particle expired, got %d", particles.Active())
	}
}

func TestGravityPullsParticleDown(t *testing.T) {
	particles := NewParticleSystem(event.NewBus())
	particles.Emit(component.Particle{
		Direction:  putils.Vec2{X: 1},
		Speed:      10,
		TTL:        1,
		Color:      color.RGBA{R: 255, A: 255},
		HasGravity: true,
		Gravity:    5,
	})
	particles.Update(0.1)
	particles.Update(0.1)

	particles.particles.Each(func(_ int, p *component.Particle) {
		if p.Position.Y <= 0 {
			t.Errorf("Expected gravity to move the particle down, got y=%v", p.Position.Y)
		}
		if p.Alpha() >= 255 {
			t.Errorf("Expected alpha to fade, got %d", p.Alpha())
		}
	})
}

func TestDeathPaletteIncludesVariationsAndExtras(t *testing.T) {
	rng := utils.NewPRNGService(9)
	base := color.RGBA{R: 200, G: 30, B: 30, A: 255}
	palette := DeathPalette(rng, base)

	if want := deathPaletteVariations + len(config.DeathParticleExtraColors); len(palette) != want {
		t.Fatalf("Expected %d colors, got %d", want, len(palette))
	}
	for _, c := range palette[:deathPaletteVariations] {
		if c.R < c.B {
			t.Errorf("Expected variations of a red base to stay reddish, got %v", c)
		}
	}
}

func TestFreezeSparkleUsesIcePalette(t *testing.T) {
	rng := utils.NewPRNGService(11)
	p := FreezeSparkle(rng, putils.Vec2{})
	found := false
	for _, c := range config.FreezeParticleColors {
		if c == p.Color {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected sparkle color from the freeze palette, got %v", p.Color)
	}
	if !p.HasGravity {
		t.Errorf("Expected sparkles to fall")
	}
}

func TestCombatTextLifecycle(t *testing.T) {
	bus := event.NewBus()
	texts := NewCombatTextSystem(bus, utils.NewPRNGService(5))

	bus.Publish(event.New(event.AddCombatText, event.Args{
		event.ArgCombatText: component.CombatTextRequest{Kind: component.CombatTextDamage, Text: "-5", Position: putils.Vec2{X: 10, Y: 10}},
	}))
	freeze := texts.Add(component.CombatTextRequest{Kind: component.CombatTextFreeze, Text: "~freeze~"})
	if texts.Active() != 2 {
		t.Fatalf("Expected 2 texts, got %d", texts.Active())
	}
	if freeze.FontSize != config.CombatTextFreezeFontSize || freeze.Color != config.FreezeTextColor {
		t.Errorf("Expected freeze styling, got size %d color %v", freeze.FontSize, freeze.Color)
	}

	texts.Update(0.1)
	if freeze.Position.Y >= 0 {
		t.Errorf("Expected freeze text to float up, got y=%v", freeze.Position.Y)
	}

	q := render.NewQueue()
	texts.Draw(q)
	if q.Len() != 4 {
		t.Errorf("Expected a shadow and a text per label, got %d requests", q.Len())
	}

	run(config.CombatTextEnergyTTL+0.1, 0.05, texts.Update)
	if texts.Active() != 0 {
		t.Errorf("Expected texts to expire, got %d", texts.Active())
	}
}

func TestUnknownCombatTextKindPanics(t *testing.T) {
	texts := NewCombatTextSystem(event.NewBus(), utils.NewPRNGService(5))
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for unknown combat text kind")
		}
	}()
	texts.Add(component.CombatTextRequest{Kind: component.CombatTextKind(99)})
}
