package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

const (
	EventFriendRequest  = "friend_request"
	EventFriendAccepted = "friend_accepted"
	EventMessage        = "message"
	EventEmotionAlert   = "emotion_alert"
)

// Event is pushed to a user's open connections as JSON.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is one connection's outbound queue.
type Client chan []byte

// Hub tracks open connections per user.
type Hub struct {
	users map[uuid.UUID]map[Client]bool
	mu    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		users: make(map[uuid.UUID]map[Client]bool),
	}
}

// Subscribe registers a new connection for userID. buffer bounds how many events
// may queue before further events are dropped.
func (h *Hub) Subscribe(userID uuid.UUID, buffer int) Client {
	client := make(Client, buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[userID]; !ok {
		h.users[userID] = make(map[Client]bool)
	}
	h.users[userID][client] = true
	return client
}

// Unsubscribe removes and closes client. Calling it twice is safe.
func (h *Hub) Unsubscribe(userID uuid.UUID, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.users[userID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.users, userID)
			}
		}
	}
}

// Publish sends event to every connection of userID without blocking.
// It returns how many connections accepted the event.
func (h *Hub) Publish(userID uuid.UUID, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.users[userID]
	if !ok {
		return 0
	}
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return 0
	}

	delivered := 0
	for client := range clients {
		select {
		case client <- messageBytes:
			delivered++
		default:
			// slow connection, drop
		}
	}
	return delivered
}

func (h *Hub) IsConnected(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID]) > 0
}
