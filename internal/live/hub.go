// Package live pushes catalog and recipe change events to connected clients
// over WebSocket, so open views can refresh derived prices without polling.
package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Event describes one mutation of the catalog or recipe stores.
type Event struct {
	Entity string `json:"entidad"`
	Action string `json:"accion"`
	ID     int    `json:"id"`
}

// Hub fans out change events to every connected client.
type Hub struct {
	mu    sync.Mutex
	conns map[*connection]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*connection]struct{})}
}

// Broadcast sends the event to every connected client. Clients that cannot
// keep up are dropped rather than blocking the writer.
func (h *Hub) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		select {
		case c.send <- payload:
		default:
			close(c.send)
			delete(h.conns, c)
		}
	}
}

// Handle upgrades the request to a WebSocket connection and registers it
// with the hub.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wc := &connection{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  h,
	}

	h.mu.Lock()
	h.conns[wc] = struct{}{}
	h.mu.Unlock()

	// Start the read and write pumps
	go wc.writePump()
	go wc.readPump()
}

func (h *Hub) unregister(wc *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[wc]; ok {
		delete(h.conns, wc)
		close(wc.send)
	}
}

// connection maintains one WebSocket connection with a client.
type connection struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// readPump drains client messages to keep the connection alive; the stream
// is one-way, so inbound payloads are discarded.
func (c *connection) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps broadcast events from the hub to the connection.
func (c *connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
