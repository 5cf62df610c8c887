package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-orders/models"
)

// CartStore holds the per-table draft carts. A cart exists from the moment a
// waiter selects the table until the draft is submitted or cancelled; carts
// for different tables never touch each other. All state is in-memory —
// abandoning a draft costs nothing.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*models.DraftCart
	stock StockChecker
}

func NewCartStore(stock StockChecker) *CartStore {
	return &CartStore{
		carts: make(map[string]*models.DraftCart),
		stock: stock,
	}
}

// SetActiveTable selects or lazily creates the cart for a table. Calling it
// again for the same table keeps the existing cart.
func (s *CartStore) SetActiveTable(tableID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[tableID]; !ok {
		s.carts[tableID] = &models.DraftCart{Table_id: tableID}
	}
}

// AddItem appends a line, or bumps the quantity by one when a line with the
// same name is already staged. Duplicate names never produce duplicate rows.
// Stock-tracked beverage lines are checked against the catalog first.
func (s *CartStore) AddItem(ctx context.Context, tableID string, item models.DraftLineItem) error {
	if item.Item_type == models.ItemTypeBeverage && item.Food_id != nil {
		if !s.stock.IsOrderable(ctx, *item.Food_id) {
			return ErrItemUnavailable
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[tableID]
	if !ok {
		return ErrNoTableSelected
	}
	for i := range cart.Items {
		if cart.Items[i].Name == item.Name {
			cart.Items[i].Quantity++
			return nil
		}
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.Line_id = primitive.NewObjectID().Hex()
	cart.Items = append(cart.Items, item)
	return nil
}

// UpdateQuantity sets the line's quantity exactly; anything below one removes
// the line.
func (s *CartStore) UpdateQuantity(tableID, lineID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[tableID]
	if !ok {
		return ErrNoTableSelected
	}
	for i := range cart.Items {
		if cart.Items[i].Line_id != lineID {
			continue
		}
		if quantity < 1 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		return nil
	}
	return ErrUnknownItem
}

// Clear empties the cart for this table only.
func (s *CartStore) Clear(tableID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[tableID]; ok {
		cart.Items = nil
	}
}

// LoadForEditing replaces the table's cart wholesale with the supplied lines.
// This is a load, not a merge: whatever was staged before is gone. Lines
// keeping their ids is what lets the later edit submission point back at the
// order items they came from.
func (s *CartStore) LoadForEditing(tableID string, items []models.DraftLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.DraftLineItem, len(items))
	copy(lines, items)
	for i := range lines {
		if lines[i].Line_id == "" {
			lines[i].Line_id = primitive.NewObjectID().Hex()
		}
	}
	s.carts[tableID] = &models.DraftCart{Table_id: tableID, Items: lines}
}

// Items returns a snapshot of the table's staged lines, or ErrNoTableSelected
// when the table was never activated.
func (s *CartStore) Items(tableID string) ([]models.DraftLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[tableID]
	if !ok {
		return nil, ErrNoTableSelected
	}
	out := make([]models.DraftLineItem, len(cart.Items))
	copy(out, cart.Items)
	return out, nil
}

// Drop discards the table's cart entirely, active selection included.
func (s *CartStore) Drop(tableID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, tableID)
}
