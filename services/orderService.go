package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-orders/models"
)

// OrderService is the merge engine: it is the only code that turns draft
// lines into persisted order items, whether at first submission, on a
// full-replace edit, or as an append-only update batch.
type OrderService struct {
	orders   OrderRepository
	tables   TableRepository
	carts    *CartStore
	notifier Notifier
}

func NewOrderService(orders OrderRepository, tables TableRepository, carts *CartStore, notifier Notifier) *OrderService {
	return &OrderService{orders: orders, tables: tables, carts: carts, notifier: notifier}
}

// Create builds a new order from the table's draft cart: cashier status OPEN,
// payment unset, one PENDING item per staged line. The cart is cleared and
// the table marked seated only after the order is persisted.
func (s *OrderService) Create(ctx context.Context, tableID string, createdBy *string) (*models.Order, error) {
	lines, err := s.carts.Items(tableID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if _, err := s.tables.Get(ctx, tableID); err != nil {
		return nil, err
	}
	open, err := s.orders.GetOpenByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrTableOccupied
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:             primitive.NewObjectID(),
		Table_id:       tableID,
		Cashier_status: models.CashierOpen,
		Payment_option: models.PaymentUnset,
		Created_by:     createdBy,
		Created_at:     now,
		Updated_at:     now,
	}
	order.Order_id = order.ID.Hex()
	for _, ln := range lines {
		item, err := newOrderItem(ln, now)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	if err := s.tables.SetAvailiable(ctx, tableID, false); err != nil {
		return nil, err
	}
	s.carts.Drop(tableID)
	s.notifier.Notify(models.EventOrderCreated, order)
	return order, nil
}

// Edit replaces the order's pending items with the submitted lines. A line
// carrying an id updates the pending item it came from; pending items the
// payload no longer mentions are removed; lines without an id become new
// pending items. Decided items never move: referencing one fails the whole
// edit, and items the order has never seen fail it too.
func (s *OrderService) Edit(ctx context.Context, orderID string, lines []models.DraftLineItem) (*models.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsFrozen() {
		return nil, ErrOrderFrozen
	}

	now := time.Now().UTC()
	payloadByID := make(map[string]models.DraftLineItem)
	for _, ln := range lines {
		if ln.Line_id == "" {
			continue
		}
		item := order.FindItem(ln.Line_id)
		if item == nil {
			return nil, ErrUnknownItem
		}
		if item.Status.IsTerminal() {
			return nil, &ImmutableItemError{ItemID: ln.Line_id}
		}
		payloadByID[ln.Line_id] = ln
	}

	mainIDs := make(map[string]bool)
	for _, it := range order.Items {
		mainIDs[it.Order_item_id] = true
	}

	// Decided items keep their place; the pending tail is rebuilt from the
	// payload in submission order.
	rebuilt := make([]models.OrderItem, 0, len(lines))
	for _, it := range order.Items {
		if it.Status.IsTerminal() {
			rebuilt = append(rebuilt, it)
		}
	}
	for _, ln := range lines {
		switch {
		case ln.Line_id == "":
			item, err := newOrderItem(ln, now)
			if err != nil {
				return nil, err
			}
			rebuilt = append(rebuilt, item)
		case mainIDs[ln.Line_id]:
			orig := order.FindItem(ln.Line_id)
			updated, err := editedOrderItem(*orig, ln, now)
			if err != nil {
				return nil, err
			}
			rebuilt = append(rebuilt, updated)
		}
	}
	order.Items = rebuilt

	// Pending batch items follow the same rule in place, so the batch stays
	// a faithful record of which add-items action each survivor came from.
	for bi := range order.Batches {
		kept := order.Batches[bi].Items[:0]
		for _, it := range order.Batches[bi].Items {
			if it.Status.IsTerminal() {
				kept = append(kept, it)
				continue
			}
			ln, ok := payloadByID[it.Order_item_id]
			if !ok {
				continue
			}
			updated, err := editedOrderItem(it, ln, now)
			if err != nil {
				return nil, err
			}
			kept = append(kept, updated)
		}
		order.Batches[bi].Items = kept
	}

	order.Updated_at = now
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	// the edit consumed the draft, same as first submission
	s.carts.Drop(order.Table_id)
	return order, nil
}

// Append records one "add items" action as an update batch. Existing items —
// decided or pending — are never touched, and nothing is merged by name:
// every addition stays independently auditable and adjudicable.
func (s *OrderService) Append(ctx context.Context, orderID string, lines []models.DraftLineItem) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsFrozen() {
		return nil, ErrOrderFrozen
	}

	now := time.Now().UTC()
	batch := models.UpdateBatch{
		Batch_id:   primitive.NewObjectID().Hex(),
		Created_at: now,
	}
	for _, ln := range lines {
		item, err := newOrderItem(ln, now)
		if err != nil {
			return nil, err
		}
		batch.Items = append(batch.Items, item)
	}
	order.Batches = append(order.Batches, batch)
	order.Updated_at = now

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	s.notifier.Notify(models.EventItemsAdded, order)
	return order, nil
}

// Get returns the current persisted state of one order.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return s.orders.Get(ctx, orderID)
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

// PendingLines exposes the order's pending items as draft lines keyed by
// their item ids, ready for CartStore.LoadForEditing.
func (s *OrderService) PendingLines(ctx context.Context, orderID string) ([]models.DraftLineItem, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	var lines []models.DraftLineItem
	for _, it := range order.AllItems() {
		if it.Status != models.ItemPending {
			continue
		}
		lines = append(lines, models.DraftLineItem{
			Line_id:   it.Order_item_id,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Item_type: it.Item_type,
			Food_id:   it.Food_id,
		})
	}
	return lines, nil
}

func newOrderItem(ln models.DraftLineItem, now time.Time) (models.OrderItem, error) {
	if err := validateLine(ln); err != nil {
		return models.OrderItem{}, err
	}
	return models.OrderItem{
		Order_item_id: primitive.NewObjectID().Hex(),
		Name:          ln.Name,
		Price:         ln.Price,
		Quantity:      ln.Quantity,
		Item_type:     ln.Item_type,
		Food_id:       ln.Food_id,
		Status:        models.ItemPending,
		Created_at:    now,
		Updated_at:    now,
	}, nil
}

func editedOrderItem(orig models.OrderItem, ln models.DraftLineItem, now time.Time) (models.OrderItem, error) {
	if err := validateLine(ln); err != nil {
		return models.OrderItem{}, err
	}
	orig.Name = ln.Name
	orig.Price = ln.Price
	orig.Quantity = ln.Quantity
	orig.Item_type = ln.Item_type
	orig.Food_id = ln.Food_id
	orig.Updated_at = now
	return orig, nil
}

func validateLine(ln models.DraftLineItem) error {
	if ln.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if ln.Quantity <= 0 {
		return fmt.Errorf("invalid quantity for item %s", ln.Name)
	}
	if ln.Price <= 0 {
		return fmt.Errorf("invalid price for item %s", ln.Name)
	}
	if ln.Item_type != models.ItemTypeFood && ln.Item_type != models.ItemTypeBeverage {
		return fmt.Errorf("invalid item type for item %s", ln.Name)
	}
	return nil
}
