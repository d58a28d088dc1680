package core

// Entity is a stable combatant identity, issued once at spawn and never
// reused while registered. It is not a storage handle; slab slots and
// swap-and-pop indices stay internal to the owning manager.
type Entity uint64

// EntityNone is the zero identity, never issued by a registry
const EntityNone Entity = 0
