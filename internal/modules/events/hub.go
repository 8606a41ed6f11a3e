package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live connection per session. A second connection for the
// same session replaces the first, mirroring a device reconnect.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[sessionID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[sessionID] = conn
}

func (h *Hub) Unregister(sessionID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[sessionID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, sessionID)
	}
}

func (h *Hub) SendToSession(sessionID string, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[sessionID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(sessionID)
		return false
	}

	return true
}

// Broadcast fans the message out to every connected session.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	sessions := make([]string, 0, len(h.connections))
	for id := range h.connections {
		sessions = append(sessions, id)
	}
	h.mutex.RUnlock()

	for _, id := range sessions {
		h.SendToSession(id, message)
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for sessionID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, sessionID)
	}
}
