package services

import (
	"context"

	"go-restaurant-orders/models"
)

// OrderRepository is the request/response store behind the order aggregate.
// Update must apply as a single compare-and-set guarded by the order's
// version and fail when a concurrent writer got there first.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, orderID string) (*models.Order, error)
	// GetOpenByTable returns (nil, nil) when the table has no open order.
	GetOpenByTable(ctx context.Context, tableID string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
}

type TableRepository interface {
	Get(ctx context.Context, tableID string) (*models.Table, error)
	SetAvailiable(ctx context.Context, tableID string, availiable bool) error
}

// StockChecker answers "is this catalog item orderable right now". Stock
// quantity arithmetic lives entirely behind this interface.
type StockChecker interface {
	IsOrderable(ctx context.Context, foodID string) bool
}

// Notifier pushes fire-and-forget events at kitchen/bar display surfaces.
type Notifier interface {
	Notify(event string, payload interface{})
}
