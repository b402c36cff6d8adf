package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Client and server event names for the workspace channel.
const (
	EventJoinWorkspace  = "join_workspace"
	EventLeaveWorkspace = "leave_workspace"
	EventTodoUpdate     = "todo_update"
	EventTyping         = "typing"

	EventUserJoined  = "user_joined"
	EventUserLeft    = "user_left"
	EventTodoUpdated = "todo_updated"
	EventUserTyping  = "user_typing"
)

// Envelope is the wire format for every workspace channel event.
type Envelope struct {
	Type        string `json:"type"`
	WorkspaceID string `json:"workspace_id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Username    string `json:"username,omitempty"`
	Data        any    `json:"data,omitempty"`
}

// Client is one authenticated websocket connection. Writes are serialized
// through writeMu because broadcasts and the ping loop share the socket.
type Client struct {
	conn     *websocket.Conn
	userID   string
	username string
	writeMu  sync.Mutex
}

func (c *Client) send(event Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteJSON(event)
}

func (c *Client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub groups live connections into rooms, one room per workspace. A client
// may sit in several rooms at once.
type Hub struct {
	rooms map[string]map[*Client]bool
	mu    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]bool),
	}
}

// Join adds the client to the workspace room and announces it to the whole
// room, the joining client included.
func (h *Hub) Join(workspaceID string, client *Client) {
	h.mu.Lock()
	if h.rooms[workspaceID] == nil {
		h.rooms[workspaceID] = make(map[*Client]bool)
	}
	h.rooms[workspaceID][client] = true
	h.mu.Unlock()

	h.Broadcast(workspaceID, Envelope{
		Type:        EventUserJoined,
		WorkspaceID: workspaceID,
		UserID:      client.userID,
		Username:    client.username,
	}, nil)
}

// Leave removes the client from the room and announces the departure. The
// room is dropped when its last member leaves.
func (h *Hub) Leave(workspaceID string, client *Client) {
	h.mu.Lock()
	if clients, exists := h.rooms[workspaceID]; exists {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, workspaceID)
		}
	}
	h.mu.Unlock()

	h.Broadcast(workspaceID, Envelope{
		Type:        EventUserLeft,
		WorkspaceID: workspaceID,
		UserID:      client.userID,
		Username:    client.username,
	}, nil)
}

// LeaveAll removes a disconnecting client from every room it joined.
func (h *Hub) LeaveAll(client *Client) {
	h.mu.RLock()
	workspaceIDs := make([]string, 0, len(h.rooms))
	for workspaceID, clients := range h.rooms {
		if clients[client] {
			workspaceIDs = append(workspaceIDs, workspaceID)
		}
	}
	h.mu.RUnlock()

	for _, workspaceID := range workspaceIDs {
		h.Leave(workspaceID, client)
	}
}

// Broadcast fans an event out to the room. A non-nil exclude skips the
// sender, which is what the relay events want.
func (h *Hub) Broadcast(workspaceID string, event Envelope, exclude *Client) {
	h.mu.RLock()
	clients, exists := h.rooms[workspaceID]
	if !exists || len(clients) == 0 {
		h.mu.RUnlock()

		return
	}

	targets := make([]*Client, 0, len(clients))
	for client := range clients {
		if client == exclude {
			continue
		}
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		if err := client.send(event); err != nil {
			log.Warn().Err(err).Str("workspace_id", workspaceID).Msg("failed to broadcast event, dropping client")
			h.drop(workspaceID, client)
		}
	}
}

// RoomSize reports the member count of a room.
func (h *Hub) RoomSize(workspaceID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[workspaceID])
}

// drop removes a dead connection without announcing a departure.
func (h *Hub) drop(workspaceID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, exists := h.rooms[workspaceID]; exists {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, workspaceID)
		}
	}

	_ = client.conn.Close()
}
