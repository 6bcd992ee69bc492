// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Grid
	ColumnCount      = 18
	RowCount         = 18
	TileRenderWidth  = 64.0
	TileRenderHeight = 32.0
	TileOffsetX      = ScreenWidth/2 - TileRenderWidth/2
	TileOffsetY      = 96.0
	TileDepthStart   = 3 // first depth token, keeps room below for off-map draws

	// Layer values
	FloorGrass      = 1
	FloorStart      = 2
	FloorGoal       = 3
	CollisionNone   = 0
	CollisionTall   = 1 // tall tree, two cells high
	CollisionShort  = 2 // short tree
	PlacedNone      = 0
	PlacedSunFlower = 1
	PlacedIceFlower = 2

	// Map generation
	StartQuadrantObstaclePercent = 5
	MinQuadrantObstaclePercent   = 5
	MaxQuadrantObstaclePercent   = 15
	MapGenerationAttempts        = 32

	// Enemy
	EnemyRenderWidth        = 32.0
	EnemyRenderHeight       = 40.0
	EnemyReachedDistance    = 2.0
	EnemyHealthVariation    = 10 // divisor: +-hp/10
	EnemySpeedVariation     = 15 // divisor: +-speed/15
	EnemyHPBarWidth         = 32.0
	EnemyHPBarHeight        = 4.0
	EnemyDeathParticleCount = 20

	// Freeze
	FreezeChancePercent       = 35
	FreezeDuration            = 2.0
	FreezeSpeedReductionParts = 2.0 // speed *= 1 - 1/k

	// Tower
	FireRateJitterDivisor = 10 // +-interval/10

	// Bullet
	BulletTTL             = 1.2
	BulletSize            = 4.0
	BulletOutlineScale    = 1.5
	BulletDamageVariation = 2 // divisor: +-damage/2

	// Energy
	EnergyStartingValue = 10
	EnergyRegenRate     = 5.0
	EnergyRegenValue    = 1

	// Waves
	WaveCountdown    = 10.0
	EscapeLimit      = 5
	WaveTextFontSize = 48
	WaveNameFontSize = 32

	WaveTextBottomOffset = 32.0
	WaveNameBottomOffset = 20.0
	WaveTextShadowOffset = 2.0

	// Combat text
	CombatTextDamageTTL       = 0.8
	CombatTextDamageSpeed     = 40.0
	CombatTextDamageFontSize  = 18
	CombatTextEnergyTTL       = 1.2
	CombatTextEnergySpeed     = 30.0
	CombatTextEnergyFontSize  = 32
	CombatTextFreezeTTL       = 1.0
	CombatTextFreezeSpeed     = 25.0
	CombatTextFreezeFontSize  = 22
	CombatTextShadowOffset    = 1.5
	SelectorStrokeWidth       = 2.0
	GoalPathOuterRadius       = 5.0
	GoalPathInnerRadius       = 4.0
	DefaultParticleGravity    = 9.8
	FreezeParticleGravity     = 0.1
	HUDButtonWidth            = 96.0
	HUDButtonHeight           = 64.0
	HUDButtonOffset           = 12.0
	HUDFontSize               = 20
	DebugCircleRadius         = 5.0
	DebugStrokeWidth          = 2.0
	GameOverTitleFontSize     = 56
	GameOverStatFontSize      = 18
	MenuTitleFontSize         = 64
	MenuHintFontSize          = 24
	PauseTitleFontSize        = 48
	DefaultTextFontSize       = 16
	ParticleAlphaFadeMaxValue = 255
)

var (
	BackgroundColor = color.RGBA{135, 206, 235, 255} // sky blue
	MenuColor       = color.RGBA{150, 50, 250, 255}
	MenuTextColor   = color.RGBA{230, 230, 255, 255}
	MenuFocusColor  = color.RGBA{255, 200, 50, 255}
	WinColor        = color.RGBA{50, 220, 100, 255}
	WinTextColor    = color.RGBA{245, 255, 245, 255}
	LoseColor       = color.RGBA{255, 80, 80, 255}
	LoseTextColor   = color.RGBA{255, 240, 240, 255}
	PauseShadeColor = color.RGBA{0, 0, 0, 128}

	TextOneColor   = color.RGBA{255, 250, 240, 255}
	ShadowColor    = color.RGBA{0, 0, 0, 255}
	SelectorColor  = color.RGBA{255, 255, 255, 200}
	CantPlaceColor = color.RGBA{220, 40, 40, 160}
	BlocksColor    = color.RGBA{255, 165, 0, 160}
	GoalOuterColor = color.RGBA{255, 255, 0, 255}
	GoalInnerColor = color.RGBA{255, 165, 0, 255}
	HPUsedColor    = color.RGBA{200, 30, 30, 255}
	HPLeftColor    = color.RGBA{40, 200, 40, 255}
	BulletOutline  = color.RGBA{0, 0, 0, 255}
	DebugColor     = color.RGBA{128, 0, 128, 255}
	EnergyColor    = color.RGBA{255, 215, 0, 255}

	DamageTextColors = []color.RGBA{
		{255, 255, 255, 255},
		{255, 235, 160, 255},
		{255, 200, 120, 255},
	}
	EnergyTextColors = []color.RGBA{
		{255, 215, 0, 255},
		{255, 240, 90, 255},
	}
	FreezeTextColor = color.RGBA{135, 206, 250, 255}

	FreezeParticleColors = []color.RGBA{
		{0, 51, 102, 255},
		{0, 76, 153, 255},
		{25, 25, 112, 255},
		{0, 102, 153, 255},
		{0, 128, 128, 255},
		{16, 52, 166, 255},
		{0, 51, 102, 180},
		{10, 75, 125, 220},
	}
	DeathParticleExtraColors = []color.RGBA{
		{255, 105, 180, 255},
		{135, 206, 250, 255},
		{255, 223, 0, 255},
		{50, 205, 50, 255},
		{255, 69, 0, 255},
		{75, 0, 130, 255},
		{255, 182, 193, 255},
		{240, 230, 140, 255},
		{173, 216, 230, 255},
		{128, 0, 128, 255},
	}
)
