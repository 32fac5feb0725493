// Package model defines the core domain types for the event catalog.
package model

import "time"

// Event is a single catalog entry. It carries no behaviour beyond the
// read-only helpers below; nothing here enforces RegisteredCount <= Capacity.
type Event struct {
	ID              int       `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Date            time.Time `json:"date" yaml:"date"`
	Location        string    `json:"location" yaml:"location"`
	Description     string    `json:"description" yaml:"description"`
	Capacity        int       `json:"capacity" yaml:"capacity"`
	RegisteredCount int       `json:"registered_count" yaml:"registered_count"`
}

// Remaining returns the number of available seats.
func (e *Event) Remaining() int {
	return e.Capacity - e.RegisteredCount
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}

// Registration summarises a successful registration.
type Registration struct {
	ConfirmationID string    `json:"confirmation_id"`
	EventID        int       `json:"event_id"`
	Remaining      int       `json:"remaining"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
