package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go-restaurant-orders/models"
)

var ErrTableNotFound = errors.New("table not found")

type TableRepository struct {
	collection *mongo.Collection
}

func NewTableRepository(collection *mongo.Collection) *TableRepository {
	return &TableRepository{collection: collection}
}

func (r *TableRepository) Get(ctx context.Context, tableID string) (*models.Table, error) {
	var table models.Table
	err := r.collection.FindOne(ctx, bson.M{"table_id": tableID}).Decode(&table)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to fetch table: %w", err)
	}
	return &table, nil
}

func (r *TableRepository) SetAvailiable(ctx context.Context, tableID string, availiable bool) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"table_id": tableID},
		bson.M{"$set": bson.M{
			"availiable": availiable,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update table availability: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrTableNotFound
	}
	return nil
}
