package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConnPair upgrades one connection through a throwaway server and returns
// both ends. The server side backs a hub Client; the dialer side plays the
// browser.
func newConnPair(t *testing.T) (serverSide, clientSide *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	accepted := make(chan *websocket.Conn, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		accepted <- conn
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	clientSide, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSide.Close() })

	serverSide = <-accepted
	t.Cleanup(func() { _ = serverSide.Close() })

	return serverSide, clientSide
}

func newTestClient(t *testing.T, userID, username string) (*Client, *websocket.Conn) {
	t.Helper()

	serverSide, clientSide := newConnPair(t)

	return &Client{conn: serverSide, userID: userID, username: username}, clientSide
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var event Envelope
	require.NoError(t, conn.ReadJSON(&event))

	return event
}

func TestHubJoinAnnouncesToRoom(t *testing.T) {
	hub := NewHub()

	alice, aliceConn := newTestClient(t, "user-1", "alice")
	bob, bobConn := newTestClient(t, "user-2", "bob")

	hub.Join("ws-1", alice)

	joined := readEnvelope(t, aliceConn)
	assert.Equal(t, EventUserJoined, joined.Type)
	assert.Equal(t, "alice", joined.Username)

	hub.Join("ws-1", bob)

	// Both members see the second join, the joiner included.
	assert.Equal(t, EventUserJoined, readEnvelope(t, aliceConn).Type)
	assert.Equal(t, EventUserJoined, readEnvelope(t, bobConn).Type)

	assert.Equal(t, 2, hub.RoomSize("ws-1"))
}

func TestHubBroadcastExcludesSender(t *testing.T) {
	hub := NewHub()

	alice, aliceConn := newTestClient(t, "user-1", "alice")
	bob, bobConn := newTestClient(t, "user-2", "bob")

	hub.Join("ws-1", alice)
	hub.Join("ws-1", bob)

	readEnvelope(t, aliceConn)
	readEnvelope(t, aliceConn)
	readEnvelope(t, bobConn)

	hub.Broadcast("ws-1", Envelope{
		Type:        EventTodoUpdated,
		WorkspaceID: "ws-1",
		UserID:      alice.userID,
		Username:    alice.username,
	}, alice)

	event := readEnvelope(t, bobConn)
	assert.Equal(t, EventTodoUpdated, event.Type)
	assert.Equal(t, "alice", event.Username)

	require.NoError(t, aliceConn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))

	var unexpected Envelope
	assert.Error(t, aliceConn.ReadJSON(&unexpected), "sender must not receive its own relay")
}

func TestHubBroadcastToEmptyRoom(t *testing.T) {
	hub := NewHub()

	// Must not panic or create the room.
	hub.Broadcast("ws-unknown", Envelope{Type: EventTodoUpdated}, nil)
	assert.Equal(t, 0, hub.RoomSize("ws-unknown"))
}

func TestHubLeave(t *testing.T) {
	hub := NewHub()

	alice, aliceConn := newTestClient(t, "user-1", "alice")
	bob, bobConn := newTestClient(t, "user-2", "bob")

	hub.Join("ws-1", alice)
	hub.Join("ws-1", bob)

	readEnvelope(t, aliceConn)
	readEnvelope(t, aliceConn)
	readEnvelope(t, bobConn)

	hub.Leave("ws-1", alice)

	left := readEnvelope(t, bobConn)
	assert.Equal(t, EventUserLeft, left.Type)
	assert.Equal(t, "alice", left.Username)
	assert.Equal(t, 1, hub.RoomSize("ws-1"))

	hub.Leave("ws-1", bob)
	assert.Equal(t, 0, hub.RoomSize("ws-1"))
}

func TestHubLeaveAll(t *testing.T) {
	hub := NewHub()

	alice, _ := newTestClient(t, "user-1", "alice")

	hub.Join("ws-1", alice)
	hub.Join("ws-2", alice)

	assert.Equal(t, 1, hub.RoomSize("ws-1"))
	assert.Equal(t, 1, hub.RoomSize("ws-2"))

	hub.LeaveAll(alice)

	assert.Equal(t, 0, hub.RoomSize("ws-1"))
	assert.Equal(t, 0, hub.RoomSize("ws-2"))
}

func TestHubDropsDeadConnections(t *testing.T) {
	hub := NewHub()

	alice, aliceConn := newTestClient(t, "user-1", "alice")
	bob, _ := newTestClient(t, "user-2", "bob")

	hub.Join("ws-1", alice)
	hub.Join("ws-1", bob)

	readEnvelope(t, aliceConn)
	readEnvelope(t, aliceConn)

	require.NoError(t, bob.conn.Close())

	hub.Broadcast("ws-1", Envelope{Type: EventTodoUpdated, WorkspaceID: "ws-1"}, nil)

	assert.Equal(t, EventTodoUpdated, readEnvelope(t, aliceConn).Type)
	assert.Equal(t, 1, hub.RoomSize("ws-1"))
}
