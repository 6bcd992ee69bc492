package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"go-bunny-defense/internal/component"
	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/event"
	"go-bunny-defense/pkg/logger"
	putils "go-bunny-defense/pkg/utils"
)

// EnergySystem is the currency store: periodic regeneration plus kill
// rewards, spent on placements.
type EnergySystem struct {
	bus *event.Bus
	log *logrus.Entry

	Energy     int
	RegenRate  float64 // seconds per regeneration tick
	RegenValue int
	elapsed    float64
}

func NewEnergySystem(bus *event.Bus) *EnergySystem {
	s := &EnergySystem{
		bus:        bus,
		log:        logger.For("energy"),
		Energy:     config.EnergyStartingValue,
		RegenRate:  config.EnergyRegenRate,
		RegenValue: config.EnergyRegenValue,
	}
	bus.Subscribe("energy_system", s)
	return s
}

func (s *EnergySystem) OnEvent(e event.Event) bool {
	if e.Name != event.EnemyDied {
		return false
	}
	enemy, ok := event.Get[*component.Enemy](e, event.ArgEnemy)
	if !ok {
		return false
	}
	s.Energy += enemy.Reward
	s.bus.Publish(event.New(event.AddCombatText, event.Args{
		event.ArgCombatText: component.CombatTextRequest{
			Kind:     component.CombatTextEnergyAdd,
			Text:     fmt.Sprintf("+%d", enemy.Reward),
			Position: enemy.Center(),
		},
	}))
	return true
}

func (s *EnergySystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.elapsed >= s.RegenRate {
		s.elapsed = 0
		s.Energy += s.RegenValue
	}
}

// CanAfford reports whether cost can be paid in full.
func (s *EnergySystem) CanAfford(cost int) bool {
	return s.Energy >= cost
}

// Spend pays cost and shows it at the given point. Callers check CanAfford
// first; the store still never goes below zero.
func (s *EnergySystem) Spend(cost int, at putils.Vec2) {
	s.Energy -= cost
	if s.Energy < 0 {
		s.log.WithField("shortfall", -s.Energy).Warn("energy went negative, clamping to zero")
		s.Energy = 0
	}
	s.bus.Publish(event.New(event.AddCombatText, event.Args{
		event.ArgCombatText: component.CombatTextRequest{
			Kind:     component.CombatTextEnergyRemove,
			Text:     fmt.Sprintf("-%d", cost),
			Position: at,
		},
	}))
}
