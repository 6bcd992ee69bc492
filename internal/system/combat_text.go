package system

import (
	"image/color"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/internal/pool"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/internal/utils"
	putils "go-bunny-defense/pkg/utils"
)

// CombatTextSystem owns the pooled floating texts requested through
// add_combat_text.
type CombatTextSystem struct {
	texts *pool.Arena[component.CombatText]
	rng   *utils.PRNGService
}

func NewCombatTextSystem(bus *event.Bus, rng *utils.PRNGService) *CombatTextSystem {
	s := &CombatTextSystem{
		texts: pool.NewArena[component.CombatText](64),
		rng:   rng,
	}
	bus.Subscribe("combat_text_system", s)
	return s
}

func (s *CombatTextSystem) OnEvent(e event.Event) bool {
	if e.Name != event.AddCombatText {
		return false
	}
	req, ok := event.Get[component.CombatTextRequest](e, event.ArgCombatText)
	if !ok {
		return false
	}
	s.Add(req)
	return true
}

// Add turns a request into a live text styled by its kind.
func (s *CombatTextSystem) Add(req component.CombatTextRequest) *component.CombatText {
	_, txt := s.texts.Acquire()
	*txt = s.style(req)
	return txt
}

func (s *CombatTextSystem) style(req component.CombatTextRequest) component.CombatText {
	txt := component.CombatText{
		Kind:      req.Kind,
		Text:      req.Text,
		Position:  req.Position,
		Direction: putils.Vec2{Y: -1},
	}
	switch req.Kind {
	case component.CombatTextDamage:
		txt.Speed = config.CombatTextDamageSpeed
		txt.TTL = config.CombatTextDamageTTL
		txt.FontSize = config.CombatTextDamageFontSize
		txt.Color = s.pick(config.DamageTextColors)
		txt.Direction.X = float64(s.rng.IntRange(-1, 1))
	case component.CombatTextEnergyAdd, component.CombatTextEnergyRemove:
		txt.Speed = config.CombatTextEnergySpeed
		txt.TTL = config.CombatTextEnergyTTL
		txt.FontSize = config.CombatTextEnergyFontSize
		txt.Color = s.pick(config.EnergyTextColors)
	case component.CombatTextFreeze:
		txt.Speed = config.CombatTextFreezeSpeed
		txt.TTL = config.CombatTextFreezeTTL
		txt.FontSize = config.CombatTextFreezeFontSize
		txt.Color = config.FreezeTextColor
	default:
		panic("system: unknown combat text kind")
	}
	txt.OriginalTTL = txt.TTL
	return txt
}

func (s *CombatTextSystem) pick(colors []color.RGBA) color.RGBA {
	return colors[s.rng.Choice(len(colors))]
}

// Active returns the number of live texts.
func (s *CombatTextSystem) Active() int {
	return s.texts.Len()
}

func (s *CombatTextSystem) Update(deltaTime float64) {
	s.texts.Each(func(id int, txt *component.CombatText) {
		txt.TTL -= deltaTime
		if txt.TTL <= 0 {
			s.texts.Release(id)
			return
		}
		txt.Position = txt.Position.Add(txt.Direction.Scale(deltaTime * txt.Speed))
	})
}

// Draw queues each text as a shadow and text pair.
func (s *CombatTextSystem) Draw(q *render.Queue) {
	s.texts.Each(func(_ int, txt *component.CombatText) {
		alpha := txt.Alpha()
		shadow := config.ShadowColor
		shadow.A = alpha
		fill := txt.Color
		fill.A = alpha

		offset := putils.Vec2{X: config.CombatTextShadowOffset, Y: config.CombatTextShadowOffset}
		q.Text(render.CategoryDamageTextShadow, txt.Text, txt.FontSize, txt.Position.Add(offset), shadow)
		q.Text(render.CategoryDamageText, txt.Text, txt.FontSize, txt.Position, fill)
	})
}

// Reset drops every text.
func (s *CombatTextSystem) Reset() {
	s.texts.Reset()
}
