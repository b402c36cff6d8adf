package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchTypingCarriesPayload(t *testing.T) {
	hub := NewHub()
	handler := &Handler{hub: hub}

	alice, aliceConn := newTestClient(t, "user-1", "alice")
	bob, bobConn := newTestClient(t, "user-2", "bob")

	hub.Join("ws-1", alice)
	readEnvelope(t, aliceConn)

	hub.Join("ws-1", bob)
	readEnvelope(t, aliceConn)
	readEnvelope(t, bobConn)

	handler.dispatch(alice, Envelope{
		Type:        EventTyping,
		WorkspaceID: "ws-1",
		Data:        map[string]any{"typing": true},
	})

	event := readEnvelope(t, bobConn)
	assert.Equal(t, EventUserTyping, event.Type)
	assert.Equal(t, "ws-1", event.WorkspaceID)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "alice", event.Username)

	payload, ok := event.Data.(map[string]any)
	require.True(t, ok, "typing indicator payload must survive the relay")
	assert.Equal(t, true, payload["typing"])

	// The sender does not hear their own typing event.
	require.NoError(t, aliceConn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))

	var echoed Envelope
	assert.Error(t, aliceConn.ReadJSON(&echoed))
}

func TestDispatchDropsEventWithoutWorkspace(t *testing.T) {
	hub := NewHub()
	handler := &Handler{hub: hub}

	alice, _ := newTestClient(t, "user-1", "alice")

	handler.dispatch(alice, Envelope{Type: EventJoinWorkspace})

	assert.Equal(t, 0, hub.RoomSize(""))
}
