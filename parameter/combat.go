package parameter

// Hit Points
const (
	// CombatInitialHPSwarm is swarm combatant starting hit points
	CombatInitialHPSwarm = 20

	// CombatInitialHPBoss is boss starting hit points
	CombatInitialHPBoss = 100
)

// Damage Resolution
const (
	// CombatCritChancePercent is the crit probability for crit-eligible requests
	CombatCritChancePercent = 15

	// CombatCritFactorNum and CombatCritFactorDen scale base damage on crit (3/2)
	CombatCritFactorNum = 3
	CombatCritFactorDen = 2

	// CombatDrainMaxPerTick bounds requests resolved per tick; excess stays
	// queued for the next tick, never dropped by the ceiling
	CombatDrainMaxPerTick = 128

	// CombatDropLogInterval is the minimum tick gap between overflow warnings
	CombatDropLogInterval = 30
)

// Swarm Storage
const (
	// SwarmSlabCapacity is the dense slot count of the pooled swarm manager
	SwarmSlabCapacity = 512
)
