package component

// EntityID identifies an enemy or tower for the lifetime of a session.
type EntityID uint64
