package models

// Events pushed to kitchen/bar display clients over the websocket hub.
// Delivery is best-effort; nothing in the order lifecycle depends on it.
const (
	EventOrderCreated = "order_created"
	EventItemsAdded   = "items_added"
)

type Notification struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}
