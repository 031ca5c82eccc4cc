package push

import (
	"log/slog"
	"testing"

	"gestcondo/config"
	"gestcondo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(buffer int) service.SessionRegistry {
	cfg := &config.Config{
		Push: &config.PushConfig{SessionBuffer: buffer},
	}

	return NewSessionRegistry(cfg, slog.Default())
}

func TestRegistry_BroadcastReachesAllSessionsOfAdmin(t *testing.T) {
	registry := newTestRegistry(4)

	first, closeFirst := registry.Register(1)
	second, closeSecond := registry.Register(1)
	defer closeFirst()
	defer closeSecond()

	other, closeOther := registry.Register(2)
	defer closeOther()

	registry.Broadcast(1, "notification", map[string]any{"id": int64(42)})

	event := <-first.Events()
	assert.Equal(t, "notification", event.Event)

	event = <-second.Events()
	assert.Equal(t, "notification", event.Event)

	select {
	case unexpected := <-other.Events():
		t.Fatalf("session of another admin received event: %+v", unexpected)
	default:
	}
}

func TestRegistry_BroadcastToUnknownAdminIsNoOp(t *testing.T) {
	registry := newTestRegistry(4)

	assert.NotPanics(t, func() {
		registry.Broadcast(99, "notification", nil)
	})
}

func TestRegistry_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	registry := newTestRegistry(1)

	sess, deregister := registry.Register(1)
	defer deregister()

	// First event fills the buffer; the second must be dropped without
	// blocking the caller.
	registry.Broadcast(1, "first", nil)
	registry.Broadcast(1, "second", nil)

	event := <-sess.Events()
	assert.Equal(t, "first", event.Event)

	select {
	case unexpected := <-sess.Events():
		t.Fatalf("expected second event to be dropped, got: %+v", unexpected)
	default:
	}
}

func TestRegistry_DeregisterClosesChannelAndStopsDelivery(t *testing.T) {
	registry := newTestRegistry(4)

	sess, deregister := registry.Register(1)
	deregister()

	_, open := <-sess.Events()
	require.False(t, open, "events channel should be closed after deregister")

	assert.NotPanics(t, func() {
		registry.Broadcast(1, "after close", nil)
		// Double deregistration must stay safe.
		deregister()
	})
}

func TestRegistry_BroadcastAfterOneSessionLeaves(t *testing.T) {
	registry := newTestRegistry(4)

	staying, closeStaying := registry.Register(1)
	defer closeStaying()

	_, closeLeaving := registry.Register(1)
	closeLeaving()

	registry.Broadcast(1, "notification", nil)

	event := <-staying.Events()
	assert.Equal(t, "notification", event.Event)
}
