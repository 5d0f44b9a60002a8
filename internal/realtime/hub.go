package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/metrics"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

type Event struct {
	Type           string          `json:"type"`
	ConversationID uint            `json:"conversation_id,omitempty"`
	Message        *dto.MessageDTO `json:"message,omitempty"`
}

type client struct {
	userID uint
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub tracks open connections per user. A user may hold several.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*client]struct{})}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	metrics.ConnectionOpened()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	c.close()
	metrics.ConnectionClosed()
}

func (h *Hub) Connected(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Send queues the event for every connection of the user. A connection
// whose buffer is full is dropped.
func (h *Hub) Send(userID uint, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("realtime marshal failed", slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients[userID] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		slog.Warn("realtime client too slow, dropping", slog.Uint64("user_id", uint64(userID)))
		h.remove(c)
	}
}

func (h *Hub) NotifyMessage(conv *models.Conversation, msg *models.Message) {
	m := dto.NewMessage(msg)
	ev := Event{Type: "message", ConversationID: conv.ID, Message: &m}
	h.Send(conv.ParticipantAID, ev)
	h.Send(conv.ParticipantBID, ev)
}

// Serve owns conn until it closes. It blocks on the read loop.
func (h *Hub) Serve(conn *websocket.Conn, userID uint) {
	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(c)

	go h.writePump(c)

	defer func() {
		h.remove(c)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	h.Send(userID, Event{Type: "connected"})

	// Clients only listen; anything they send is discarded.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c)
				return
			}
		}
	}
}
