package parameter

// Entity sizes and speeds in arena units
const (
	PlayerSize  = 64.0
	PlayerSpeed = 500.0

	EnemySize = 64.0

	// EnemySpeedSlow and EnemySpeedFast are the two supported wanderer speeds
	EnemySpeedSlow = 200.0
	EnemySpeedFast = 300.0

	// EnemySpeed is the default wanderer speed
	EnemySpeed = EnemySpeedSlow

	NumberOfEnemies = 4
)

// Default arena used when no viewport is supplied by a host
const (
	DefaultArenaWidth  = 800.0
	DefaultArenaHeight = 600.0
)
