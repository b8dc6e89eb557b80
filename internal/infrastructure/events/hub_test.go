package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubFanout(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	a := hub.Subscribe("a", 4)
	b := hub.Subscribe("b", 4)
	require.Equal(t, 2, hub.SubscriberCount())

	id := uuid.New()
	hub.EmitDealClosed(id)

	gotA := <-a
	gotB := <-b
	assert.Equal(t, id, gotA.NegotiationID)
	assert.Equal(t, id, gotB.NegotiationID)
	assert.False(t, gotA.ClosedAt.IsZero())
}

func TestHubFullBufferDoesNotBlockEmit(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	ch := hub.Subscribe("slow", 1)
	first := uuid.New()
	hub.EmitDealClosed(first)
	hub.EmitDealClosed(uuid.New()) // dropped, buffer is full

	got := <-ch
	assert.Equal(t, first, got.NegotiationID)
	select {
	case extra, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		t.Fatalf("unexpected buffered event %v", extra.NegotiationID)
	default:
	}
}

func TestHubResubscribeReplacesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	old := hub.Subscribe("viewer", 1)
	fresh := hub.Subscribe("viewer", 1)
	require.Equal(t, 1, hub.SubscriberCount())

	_, ok := <-old
	assert.False(t, ok, "replaced channel should be closed")

	id := uuid.New()
	hub.EmitDealClosed(id)
	got := <-fresh
	assert.Equal(t, id, got.NegotiationID)
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("gone", 1)
	hub.Unsubscribe("gone")
	require.Equal(t, 0, hub.SubscriberCount())

	hub.EmitDealClosed(uuid.New())
	_, ok := <-ch
	assert.False(t, ok)
}
