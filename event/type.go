package event

// EventType identifies an outbound pipeline notification
type EventType int

const (
	// EventHealthChanged signals a registry health mutation
	// Trigger: Registry.SetHealth / ApplyDelta
	// Consumer: presentation (bars, floating numbers) | Payload: *HealthChangedPayload
	EventHealthChanged EventType = iota + 1

	// EventDeath signals an entity crossing to dead, emitted exactly once
	// Trigger: Registry.MarkDead
	// Consumer: reward/progression, owning lifecycle subsystem | Payload: core.Entity
	EventDeath

	// EventDamageResult reports one resolved damage request
	// Trigger: Processor after resolution
	// Consumer: floating text, analytics | Payload: *DamageResultPayload
	EventDamageResult

	// EventCombatWarning reports a counted, throttled pipeline anomaly
	// Trigger: Intake overflow, Processor discard paths
	// Consumer: diagnostics overlay | Payload: packed WarnCategory | count
	EventCombatWarning
)

// GameEvent is a single outbound notification with its origin tick
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// WarnCategory distinguishes anomaly classes in warning notifications
type WarnCategory uint8

const (
	WarnOverflowDrop WarnCategory = iota + 1
	WarnHardDrop
	WarnUnknownSource
	WarnUnknownTarget
	WarnDeadTarget
	WarnPoolOverflow
	WarnDuplicateRegister
)

// String returns the diagnostic label for a warning category
func (c WarnCategory) String() string {
	switch c {
	case WarnOverflowDrop:
		return "overflow_drop"
	case WarnHardDrop:
		return "hard_drop"
	case WarnUnknownSource:
		return "unknown_source"
	case WarnUnknownTarget:
		return "unknown_target"
	case WarnDeadTarget:
		return "dead_target"
	case WarnPoolOverflow:
		return "pool_overflow"
	case WarnDuplicateRegister:
		return "duplicate_register"
	default:
		return "unknown"
	}
}

// PackWarning bit-packs a warning to bypass heap allocation:
// category in the high 16 bits, aggregate count in the low 48
func PackWarning(category WarnCategory, count uint64) uint64 {
	return (uint64(category) << 48) | (count & 0xFFFFFFFFFFFF)
}

// UnpackWarning reverses PackWarning
func UnpackWarning(packed uint64) (WarnCategory, uint64) {
	return WarnCategory(packed >> 48), packed & 0xFFFFFFFFFFFF
}
