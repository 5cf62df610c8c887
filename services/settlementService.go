package services

import (
	"context"
	"time"

	"go-restaurant-orders/models"
)

// SettlementService enforces the cashier freeze: once the bill is printed the
// order is read-only for everyone until an admin reopens it.
type SettlementService struct {
	orders OrderRepository
	tables TableRepository
}

func NewSettlementService(orders OrderRepository, tables TableRepository) *SettlementService {
	return &SettlementService{orders: orders, tables: tables}
}

// SetPaymentOption records how the table intends to pay. A receipt reference
// is only meaningful for online payment; choosing cash discards any
// previously attached reference.
func (s *SettlementService) SetPaymentOption(ctx context.Context, orderID string, option models.PaymentOption, receiptRef *string) (*models.Order, error) {
	if option != models.PaymentCash && option != models.PaymentOnline {
		return nil, ErrInvalidPayment
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsFrozen() {
		return nil, ErrPaymentLocked
	}

	order.Payment_option = option
	if option == models.PaymentOnline {
		order.Receipt_reference = receiptRef
	} else {
		order.Receipt_reference = nil
	}
	order.Updated_at = time.Now().UTC()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Print freezes the order and releases the table for new seating. There must
// be something to bill: at least one accepted item.
func (s *SettlementService) Print(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsFrozen() {
		return nil, ErrOrderFrozen
	}
	if !hasAcceptedItem(order) {
		return nil, ErrNothingToBill
	}

	order.Cashier_status = models.CashierPrinted
	order.Updated_at = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.tables.SetAvailiable(ctx, order.Table_id, true); err != nil {
		return nil, err
	}
	return order, nil
}

// ResetToOpen is the administrative escape hatch: it clears the printed flag
// and nothing else. Item statuses stay as decided and the table stays
// released. Resetting an already-open order changes nothing.
func (s *SettlementService) ResetToOpen(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsFrozen() {
		return order, nil
	}

	order.Cashier_status = models.CashierOpen
	order.Updated_at = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// BillTotal is the amount owed: price times quantity over accepted items
// only. Pending and rejected items never contribute, so the running total is
// stable mid-adjudication.
func BillTotal(order *models.Order) float64 {
	total := 0.0
	for _, it := range order.AllItems() {
		if it.Status == models.ItemAccepted {
			total += it.Price * float64(it.Quantity)
		}
	}
	return total
}

func hasAcceptedItem(order *models.Order) bool {
	for _, it := range order.AllItems() {
		if it.Status == models.ItemAccepted {
			return true
		}
	}
	return false
}
