package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go-restaurant-orders/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrConflict means a concurrent writer updated the order first; the
	// caller should re-read and re-decide.
	ErrConflict = errors.New("order was modified concurrently")
)

// OrderRepository persists the order aggregate as one document per order,
// items and batches embedded, so every mutation lands as a single atomic
// replace guarded by the version field.
type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(collection *mongo.Collection) *OrderRepository {
	return &OrderRepository{collection: collection}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	order.Version = 1
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) GetOpenByTable(ctx context.Context, tableID string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{
		"table_id":       tableID,
		"cashier_status": models.CashierOpen,
	}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch open order for table: %w", err)
	}
	return &order, nil
}

// Update replaces the stored document only if nobody else has bumped the
// version since this copy was read. A zero-match replace on an existing order
// is a lost race.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	readVersion := order.Version
	order.Version = readVersion + 1

	result, err := r.collection.ReplaceOne(ctx, bson.M{
		"order_id": order.Order_id,
		"version":  readVersion,
	}, order)
	if err != nil {
		order.Version = readVersion
		return fmt.Errorf("failed to update order: %w", err)
	}
	if result.MatchedCount == 0 {
		order.Version = readVersion
		count, err := r.collection.CountDocuments(ctx, bson.M{"order_id": order.Order_id})
		if err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		if count == 0 {
			return ErrOrderNotFound
		}
		return ErrConflict
	}
	return nil
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}
