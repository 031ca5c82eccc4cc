// Package service defines interfaces for infrastructure capabilities the
// use case layer depends on.
package service

import "github.com/google/uuid"

// PushEvent is a lightweight event delivered to a connected admin session.
type PushEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// PushSession is one open delivery channel of an administrator session. An
// administrator may hold several at once (multiple browser tabs).
type PushSession interface {
	// ID identifies the session for logging.
	ID() uuid.UUID

	// Events is the session's event stream. The channel is closed when the
	// session is deregistered.
	Events() <-chan PushEvent
}

// SessionRegistry tracks the currently-connected administrator sessions and
// delivers best-effort push events to them. It is a process-lifetime
// collaborator handed to components that broadcast; there is no ambient
// global registry.
type SessionRegistry interface {
	// Register opens a new session for the administrator and returns it
	// together with its deregistration function. Deregistering twice is not
	// an error.
	Register(adminID int64) (PushSession, func())

	// Broadcast delivers the event to every registered session of the
	// administrator. Zero registered sessions is a silent no-op; a session
	// that cannot accept the event is skipped. Broadcast never blocks.
	Broadcast(adminID int64, event string, payload any)
}
