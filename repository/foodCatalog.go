package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go-restaurant-orders/models"
)

// FoodCatalog answers orderability questions against the food collection. The
// order core never sees stock numbers, only this yes/no.
type FoodCatalog struct {
	collection *mongo.Collection
}

func NewFoodCatalog(collection *mongo.Collection) *FoodCatalog {
	return &FoodCatalog{collection: collection}
}

func (c *FoodCatalog) IsOrderable(ctx context.Context, foodID string) bool {
	var food models.Food
	err := c.collection.FindOne(ctx, bson.M{"food_id": foodID}).Decode(&food)
	if err != nil {
		return false
	}
	return food.Availiable != nil && *food.Availiable
}
