package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"streakhub/config"
	"streakhub/infras/jwt"
	"streakhub/shared/constant"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Handler upgrades authenticated requests onto the workspace channel. The
// token arrives as a query parameter because browsers cannot set headers on
// a websocket handshake.
type Handler struct {
	hub        *Hub
	cfg        *config.Config
	jwtService jwt.JWT
}

func NewHandler(hub *Hub, cfg *config.Config, jwtService jwt.JWT) *Handler {
	return &Handler{
		hub:        hub,
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, allowed := range h.cfg.App.CORS.AllowedOrigins {
		if allowed == constant.Asterix || allowed == origin {
			return true
		}
	}

	return false
}

// ServeWS authenticates the handshake, upgrades the connection, and runs
// the read loop until the peer goes away.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get(constant.RequestParamToken)

	claims, err := h.jwtService.ValidateToken(tokenString, jwt.AccessToken)
	if err != nil || claims.UserID == "" {
		http.Error(w, "invalid or missing token", http.StatusUnauthorized)

		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")

		return
	}

	client := &Client{
		conn:     conn,
		userID:   claims.UserID,
		username: claims.Username,
	}

	defer func() {
		h.hub.LeaveAll(client)
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-stopPing:
				return
			case <-ticker.C:
				if err := client.ping(); err != nil {
					return
				}
			}
		}
	}()

	h.readLoop(client)
}

func (h *Handler) readLoop(client *Client) {
	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("user_id", client.userID).Msg("websocket read failed")
			}

			return
		}

		var event Envelope
		if err := json.Unmarshal(raw, &event); err != nil {
			log.Warn().Err(err).Str("user_id", client.userID).Msg("dropping malformed websocket event")

			continue
		}

		h.dispatch(client, event)
	}
}

// dispatch routes a client event. Unknown types and events without a
// workspace are dropped silently.
func (h *Handler) dispatch(client *Client, event Envelope) {
	if event.WorkspaceID == "" {
		return
	}

	switch event.Type {
	case EventJoinWorkspace:
		h.hub.Join(event.WorkspaceID, client)
	case EventLeaveWorkspace:
		h.hub.Leave(event.WorkspaceID, client)
	case EventTodoUpdate:
		h.hub.Broadcast(event.WorkspaceID, Envelope{
			Type:        EventTodoUpdated,
			WorkspaceID: event.WorkspaceID,
			UserID:      client.userID,
			Username:    client.username,
			Data:        event.Data,
		}, client)
	case EventTyping:
		h.hub.Broadcast(event.WorkspaceID, Envelope{
			Type:        EventUserTyping,
			WorkspaceID: event.WorkspaceID,
			UserID:      client.userID,
			Username:    client.username,
			Data:        event.Data,
		}, client)
	}
}
