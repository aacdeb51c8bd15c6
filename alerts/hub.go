package alerts

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jugnuu/themis-pos/utils"
)

// Event types pushed to connected staff displays.
const (
	EventNewOrder    = "new_order_alert"
	EventWaiterCall  = "waiter_call_alert"
	EventOrderServed = "order_served"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans events out to every currently connected staff client.
// Fire-and-forget: no backlog, no replay, no acknowledgments. A client
// that connects after a publish never sees it.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// RegisterClient adds a connection to the broadcast set.
func (h *Hub) RegisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

// UnregisterClient removes and closes a connection.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// BroadcastNewOrder announces a freshly submitted order.
func (h *Hub) BroadcastNewOrder(id uint, table string) {
	h.broadcast(Message{
		Event: EventNewOrder,
		Data: map[string]interface{}{
			"id":    id,
			"table": table,
			"type":  "ORDER",
		},
	})
}

// BroadcastWaiterCall announces that a table wants a waiter.
func (h *Hub) BroadcastWaiterCall(table string) {
	h.broadcast(Message{
		Event: EventWaiterCall,
		Data: map[string]interface{}{
			"table": table,
			"type":  "WAITER",
		},
	})
}

// BroadcastOrderServed announces that an order was marked served.
func (h *Hub) BroadcastOrderServed(id uint) {
	h.broadcast(Message{
		Event: EventOrderServed,
		Data: map[string]interface{}{
			"id": id,
		},
	})
}

// broadcast delivers one message to every connected client. A client
// that fails its write (or misses the write deadline) is dropped so it
// cannot affect delivery to the others.
func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("Error marshaling alert: %v", err)
		}
		return
	}

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			if utils.InfoLogger != nil {
				utils.InfoLogger.Printf("Dropping staff client after write error: %v", err)
			}
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
