package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans order events out to every connected kitchen/bar display. Delivery
// is best-effort: a dead client is dropped, never retried.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

var hub = NewHub()

func (h *Hub) Notify(event string, payload interface{}) {
	message, err := json.Marshal(models.Notification{
		Event:   event,
		Payload: payload,
	})
	if err != nil {
		fmt.Println("Error marshaling message:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			fmt.Println("Error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		hub.mu.Lock()
		hub.clients[conn] = true
		hub.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.mu.Lock()
				delete(hub.clients, conn)
				hub.mu.Unlock()
				break
			}
		}
	}
}
