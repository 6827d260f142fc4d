package kds

import (
	"sync"

	"github.com/gorilla/websocket"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

// Event types pushed to connected POS/kitchen screens.
const (
	EventOrderUpdate  = "order_update"
	EventOrderKitchen = "order_kitchen"
	EventOrderReady   = "order_ready"
	EventOrderPaid    = "order_paid"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// hub holds every connected screen (counter, kitchen display) keyed by role.
type hub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var posHub = hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	posHub.mutex.Lock()
	defer posHub.mutex.Unlock()
	posHub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	posHub.mutex.Lock()
	defer posHub.mutex.Unlock()
	delete(posHub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate pushes a changed order to every screen.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastOrderEvent pushes a lifecycle event (kitchen/ready/paid) with the
// order id so screens can refresh the one ticket.
func BroadcastOrderEvent(event string, orderID uint, orderNo string) {
	broadcast(Message{Event: event, Data: map[string]interface{}{
		"order_id": orderID,
		"order_no": orderNo,
	}})
}

func broadcast(msg Message) {
	posHub.mutex.Lock()
	defer posHub.mutex.Unlock()

	for conn := range posHub.clients {
		if err := conn.WriteJSON(msg); err != nil {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("kds broadcast failed, dropping client: %v", err)
			}
			delete(posHub.clients, conn)
			conn.Close()
		}
	}
}
