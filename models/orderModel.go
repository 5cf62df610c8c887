package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemStatus is the lifecycle state of a single order item. PENDING is the
// only state an item can leave; the other three are terminal.
type ItemStatus string

const (
	ItemPending   ItemStatus = "PENDING"
	ItemAccepted  ItemStatus = "ACCEPTED"
	ItemRejected  ItemStatus = "REJECTED"
	ItemCancelled ItemStatus = "CANCELLED"
)

func (s ItemStatus) IsTerminal() bool {
	return s == ItemAccepted || s == ItemRejected || s == ItemCancelled
}

func (s ItemStatus) IsValid() bool {
	return s == ItemPending || s.IsTerminal()
}

// CashierStatus freezes the order once the cashier prints the bill.
type CashierStatus string

const (
	CashierOpen    CashierStatus = "OPEN"
	CashierPrinted CashierStatus = "PRINTED"
)

type PaymentOption string

const (
	PaymentUnset  PaymentOption = ""
	PaymentCash   PaymentOption = "CASH"
	PaymentOnline PaymentOption = "ONLINE"
)

type ItemType string

const (
	ItemTypeFood     ItemType = "FOOD"
	ItemTypeBeverage ItemType = "BEVERAGE"
)

type OrderItem struct {
	Order_item_id string     `bson:"order_item_id" json:"order_item_id"`
	Name          string     `bson:"name" json:"name" validate:"required,min=1"`
	Price         float64    `bson:"price" json:"price" validate:"required,gt=0"`
	Quantity      int        `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Item_type     ItemType   `bson:"item_type" json:"item_type" validate:"required,eq=FOOD|eq=BEVERAGE"`
	Food_id       *string    `bson:"food_id,omitempty" json:"food_id,omitempty"`
	Status        ItemStatus `bson:"status" json:"status"`
	Created_at    time.Time  `bson:"created_at" json:"created_at"`
	Updated_at    time.Time  `bson:"updated_at" json:"updated_at"`
}

// UpdateBatch is an immutable audit record of one "add items" action against
// an order that already exists. Its items are adjudicated exactly like the
// items created with the order.
type UpdateBatch struct {
	Batch_id   string      `bson:"batch_id" json:"batch_id"`
	Created_at time.Time   `bson:"created_at" json:"created_at"`
	Items      []OrderItem `bson:"items" json:"items"`
}

const BatchPartial = "PARTIAL"

// AggregateStatus is derived for display: every item sharing one status
// reports that status, anything mixed reports PARTIAL and the UI reads the
// items themselves.
func (b UpdateBatch) AggregateStatus() string {
	if len(b.Items) == 0 {
		return string(ItemPending)
	}
	first := b.Items[0].Status
	for _, it := range b.Items[1:] {
		if it.Status != first {
			return BatchPartial
		}
	}
	return string(first)
}

type Order struct {
	ID                primitive.ObjectID `bson:"_id" json:"-"`
	Order_id          string             `bson:"order_id" json:"order_id"`
	Table_id          string             `bson:"table_id" json:"table_id"`
	Cashier_status    CashierStatus      `bson:"cashier_status" json:"cashier_status"`
	Payment_option    PaymentOption      `bson:"payment_option" json:"payment_option"`
	Receipt_reference *string            `bson:"receipt_reference,omitempty" json:"receipt_reference,omitempty"`
	Items             []OrderItem        `bson:"items" json:"items"`
	Batches           []UpdateBatch      `bson:"batches" json:"batches"`
	Version           int64              `bson:"version" json:"version"`
	Created_by        *string            `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Created_at        time.Time          `bson:"created_at" json:"created_at"`
	Updated_at        time.Time          `bson:"updated_at" json:"updated_at"`
}

// AllItems walks the originally-created items followed by every batch's items
// in append order.
func (o *Order) AllItems() []*OrderItem {
	items := make([]*OrderItem, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, &o.Items[i])
	}
	for bi := range o.Batches {
		for i := range o.Batches[bi].Items {
			items = append(items, &o.Batches[bi].Items[i])
		}
	}
	return items
}

// FindItem returns the item with the given id wherever it lives, main list or
// batch.
func (o *Order) FindItem(itemID string) *OrderItem {
	for _, it := range o.AllItems() {
		if it.Order_item_id == itemID {
			return it
		}
	}
	return nil
}

func (o *Order) IsFrozen() bool {
	return o.Cashier_status == CashierPrinted
}
