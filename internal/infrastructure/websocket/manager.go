package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"researchhub/pkg/logger"
)

// Client represents one authenticated WebSocket connection.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	// conversation watches owned by this connection, keyed by chat id
	watches map[string]func()
	mu      sync.Mutex
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID:  userID,
		Conn:    conn,
		Send:    make(chan []byte, 64),
		watches: make(map[string]func()),
	}
}

// AddWatch registers a cancel func for a conversation watch, replacing (and
// cancelling) any previous watch on the same conversation.
func (c *Client) AddWatch(chatID string, cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.watches[chatID]; ok {
		prev()
	}
	c.watches[chatID] = cancel
}

func (c *Client) RemoveWatch(chatID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cancel, ok := c.watches[chatID]; ok {
		cancel()
		delete(c.watches, chatID)
	}
}

func (c *Client) cancelAllWatches() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, cancel := range c.watches {
		cancel()
		delete(c.watches, id)
	}
}

// Manager tracks all active connections and routes outbound frames.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Start runs the manager's main loop until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("WebSocket client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				client.cancelAllWatches()
				logger.Info("WebSocket client unregistered: %s", client.UserID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, client.UserID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser delivers a frame to one user, dropping it if the connection's
// buffer is full or the user is offline.
func (m *Manager) SendToUser(userID string, message []byte) bool {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return false
	}

	select {
	case client.Send <- message:
		return true
	default:
		return false
	}
}

func (m *Manager) Broadcast(message []byte) {
	m.broadcast <- message
}

func (m *Manager) IsOnline(userID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// ReadPump reads frames from the connection and hands them to handle until
// the connection drops.
func (c *Client) ReadPump(m *Manager, handle func(*Client, []byte)) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error for %s: %v", c.UserID, err)
			}
			break
		}

		handle(c, message)
	}
}

// WritePump drains the send buffer onto the wire.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
