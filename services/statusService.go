package services

import (
	"context"
	"time"

	"go-restaurant-orders/models"
)

// StatusService is the only component allowed to move an order item out of
// PENDING. Kitchen and bar sessions go through here and nowhere else — they
// never create, delete, or re-price items.
type StatusService struct {
	orders OrderRepository
}

func NewStatusService(orders OrderRepository) *StatusService {
	return &StatusService{orders: orders}
}

// Transition moves one pending item to a terminal status. Re-applying a
// terminal status is rejected rather than treated as a no-op, so a
// double-submitting client hears about it. Nothing but the status (and its
// timestamp) changes.
func (s *StatusService) Transition(ctx context.Context, orderID, itemID string, newStatus models.ItemStatus) (*models.Order, error) {
	if !newStatus.IsTerminal() {
		return nil, ErrInvalidTransition
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsFrozen() {
		return nil, ErrOrderFrozen
	}
	item := order.FindItem(itemID)
	if item == nil {
		return nil, ErrUnknownItem
	}
	if item.Status != models.ItemPending {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	item.Status = newStatus
	item.Updated_at = now
	order.Updated_at = now

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
