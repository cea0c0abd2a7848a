package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	wsWriteTimeout   = 10 * time.Second
	wsSendBufferSize = 16
)

// Hub fans a status snapshot out to connected viewers after every admin
// mutation. There is no ticker: broadcasts are mutation-driven only, and
// countdown rendering stays client-poll driven.
type Hub struct {
	mu       sync.Mutex
	conns    map[*hubConn]bool
	upgrader websocket.Upgrader
}

type hubConn struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		conns: make(map[*hubConn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the peer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")
		return
	}

	c := &hubConn{conn: conn, send: make(chan []byte, wsSendBufferSize)}
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
	log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("viewer connected")

	go c.writePump()
	c.readPump(h)
}

// Broadcast marshals payload once and queues it to every connection.
// Connections too slow to drain their buffer are dropped.
func (h *Hub) Broadcast(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal broadcast payload")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		select {
		case c.send <- data:
		default:
			log.Warn().Msg("viewer send buffer full, dropping connection")
			delete(h.conns, c)
			close(c.send)
		}
	}
}

func (h *Hub) remove(c *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[c] {
		delete(h.conns, c)
		close(c.send)
	}
}

// readPump discards inbound frames; viewers are read-only.
func (c *hubConn) readPump(h *Hub) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *hubConn) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
