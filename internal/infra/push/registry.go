// Package push implements the in-process live push registry for connected
// administrator sessions.
package push

import (
	"log/slog"
	"sync"

	"gestcondo/config"
	"gestcondo/internal/domain/service"

	"github.com/google/uuid"
)

// session is one open delivery channel. The events channel is buffered; a
// session that falls behind loses events rather than blocking the writer.
type session struct {
	id     uuid.UUID
	events chan service.PushEvent
}

func (s *session) ID() uuid.UUID {
	return s.id
}

func (s *session) Events() <-chan service.PushEvent {
	return s.events
}

// registry is the process-wide administrator session registry.
type registry struct {
	mu       sync.RWMutex
	sessions map[int64]map[uuid.UUID]*session
	buffer   int
	logger   *slog.Logger
}

// NewSessionRegistry is the constructor for the session registry.
func NewSessionRegistry(cfg *config.Config, logger *slog.Logger) service.SessionRegistry {
	return &registry{
		sessions: make(map[int64]map[uuid.UUID]*session),
		buffer:   cfg.SessionBuffer(),
		logger:   logger,
	}
}

// Register opens a new session for the administrator and returns it together
// with its deregistration function.
func (r *registry) Register(adminID int64) (service.PushSession, func()) {
	sess := &session{
		id:     uuid.New(),
		events: make(chan service.PushEvent, r.buffer),
	}

	r.mu.Lock()
	perAdmin, ok := r.sessions[adminID]
	if !ok {
		perAdmin = make(map[uuid.UUID]*session)
		r.sessions[adminID] = perAdmin
	}
	perAdmin[sess.id] = sess
	r.mu.Unlock()

	var once sync.Once
	deregister := func() {
		once.Do(func() {
			r.mu.Lock()
			if perAdmin, ok := r.sessions[adminID]; ok {
				delete(perAdmin, sess.id)
				if len(perAdmin) == 0 {
					delete(r.sessions, adminID)
				}
			}
			r.mu.Unlock()

			close(sess.events)
		})
	}

	return sess, deregister
}

// Broadcast delivers the event to every registered session of the
// administrator without blocking. A session whose buffer is full is skipped.
func (r *registry) Broadcast(adminID int64, event string, payload any) {
	pushEvent := service.PushEvent{
		Event:   event,
		Payload: payload,
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sess := range r.sessions[adminID] {
		select {
		case sess.events <- pushEvent:
		default:
			if r.logger != nil {
				r.logger.Warn("Push session buffer full, dropping event",
					slog.String("sessionID", sess.id.String()),
					slog.Int64("adminID", adminID),
					slog.String("event", event),
				)
			}
		}
	}
}
