package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySwarm     = 100 // Movement and slot upkeep before damage lands
	PriorityProcessor = 200 // Drains the damage queue once per tick
	PriorityDiag      = 900 // Telemetry sampling after all game logic
)
