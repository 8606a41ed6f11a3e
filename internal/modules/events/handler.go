package events

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"inspectbook/internal/domain"
	jwtsvc "inspectbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// TODO: restrict origins once the app's web host is fixed.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StateProvider supplies the snapshot pushed to a freshly connected client.
type StateProvider interface {
	State() domain.AppState
}

type Handler struct {
	hub        *Hub
	jwtService *jwtsvc.Service
	provider   StateProvider
}

func NewHandler(hub *Hub, jwtService *jwtsvc.Service, provider StateProvider) *Handler {
	return &Handler{
		hub:        hub,
		jwtService: jwtService,
		provider:   provider,
	}
}

// HandleWebSocket upgrades GET /ws?token=JWT to a push channel for state
// events. Auth rides the query string since browsers cannot set headers on
// WebSocket upgrades.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	sessionID := claims.SessionID
	h.hub.Register(sessionID, conn)
	log.Printf("Session %s connected via WebSocket", sessionID)

	defer func() {
		h.hub.Unregister(sessionID)
		conn.Close()
		log.Printf("Session %s disconnected from WebSocket", sessionID)
	}()

	// Initial snapshot so the client renders without a REST round trip.
	_ = conn.WriteJSON(NewStateEvent(h.provider.State()))

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	go h.pingLoop(conn)

	h.readLoop(conn, sessionID)
}

func (h *Handler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

// readLoop drains client frames. The channel is push-only apart from an
// application-level ping.
func (h *Handler) readLoop(conn *websocket.Conn, sessionID string) {
	for {
		_, rawMsg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for session %s: %v", sessionID, err)
			}
			return
		}

		var msg struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(rawMsg, &msg); err != nil {
			continue
		}

		if msg.Type == "ping" {
			_ = conn.WriteJSON(NewPongEvent())
		}
	}
}
