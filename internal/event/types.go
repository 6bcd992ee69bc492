// internal/event/types.go
package event

const (
	SpawnEnemy        Name = "spawn_enemy"         // wave scheduler asks for one enemy
	EnemyDied         Name = "enemy_died"          // enemy health reached zero
	EnemyEscaped      Name = "enemy_escaped"       // enemy reached the goal
	EnemyProcessed    Name = "enemy_processed"     // enemy removed from the active set
	ShootBullet       Name = "shoot_bullet"        // tower fired
	BulletHit         Name = "bullet_hit"          // bullet damaged an enemy
	TowerPlaced       Name = "tower_placed"        // placement accepted
	AddCombatText     Name = "add_combat_text"     // floating text request
	EmitParticle      Name = "emit_particle"       // particle burst request
	WaveNumberChanged Name = "wave_number_changed" // countdown finished
	GameStatusChanged Name = "game_status_changed" // win or loss
)

// Argument keys.
const (
	ArgEnemy      = "enemy"
	ArgTemplate   = "template"
	ArgOrigin     = "origin"
	ArgTarget     = "target"
	ArgPayload    = "payload"
	ArgTower      = "tower"
	ArgTile       = "tile"
	ArgCombatText = "combat_text"
	ArgParticles  = "particles"
	ArgWaveNumber = "wave_number"
	ArgOutcome    = "outcome"
	ArgStatusText = "status_text"
	ArgDamage     = "damage"
)

// Get returns the argument stored under key converted to T.
func Get[T any](e Event, key string) (T, bool) {
	var zero T
	if e.Args == nil {
		return zero, false
	}
	raw, ok := e.Args[key]
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}
