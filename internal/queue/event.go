// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a registration commits. It carries
// enough information for downstream consumers (welcome mail, analytics) to
// act without querying the primary database.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}
