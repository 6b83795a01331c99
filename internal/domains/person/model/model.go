package model

import "time"

// =====================================================
// PERSON ENTITY
// =====================================================

// Person is a contact record with relationship metadata.
// Used across all layers (repository, service, handler).
type Person struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Type     string    `json:"type" db:"type"`
	Status   string    `json:"status" db:"status"`
	Notes    string    `json:"notes" db:"notes"`
	Location *string   `json:"location" db:"location"`
	MetSince time.Time `json:"metSince" db:"met_since"`
	// Connections is a JSON-encoded array of person ids ("[2,3]") stored
	// as opaque text. It is transmitted double-encoded and is NOT checked
	// for referential integrity: targets may not exist, and an edge A->B
	// does not imply B->A.
	Connections string `json:"connections" db:"connections"`
}

// Relationship context (how the person is known).
const (
	TypeColleague = "colleague"
	TypeGroupmate = "groupmate"
	TypeFamily    = "family"
	TypeClassmate = "classmate"
)

// Relationship closeness tier.
const (
	StatusBestFriend   = "best-friend"
	StatusFriend       = "friend"
	StatusAcquaintance = "acquaintance"
)

// DefaultConnections is the stored value when a client omits connections.
const DefaultConnections = "[]"

// PersonTypes lists all valid relationship types.
func PersonTypes() []string {
	return []string{TypeColleague, TypeGroupmate, TypeFamily, TypeClassmate}
}

// PersonStatuses lists all valid closeness tiers.
func PersonStatuses() []string {
	return []string{StatusBestFriend, StatusFriend, StatusAcquaintance}
}
