package services

import (
	"context"
	"testing"

	"go-restaurant-orders/models"

	"gopkg.in/go-playground/assert.v1"
)

func TestAddItemFoldsDuplicateNames(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.carts.SetActiveTable("t1")

	assert.Equal(t, env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1)), nil)
	assert.Equal(t, env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1)), nil)

	items, err := env.carts.Items("t1")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(items), 1)
	assert.Equal(t, items[0].Quantity, 2)
}

func TestAddItemWithoutActiveTable(t *testing.T) {
	env := newTestEnv()
	err := env.carts.AddItem(context.Background(), "t1", foodLine("Burger", 8.5, 1))
	assert.Equal(t, err, ErrNoTableSelected)
}

func TestAddItemChecksBeverageStock(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.stock.unavailable["f-cola"] = true
	env.carts.SetActiveTable("t1")

	err := env.carts.AddItem(ctx, "t1", beverageLine("Cola", 2.5, 1, "f-cola"))
	assert.Equal(t, err, ErrItemUnavailable)

	// food lines never hit the stock gate
	err = env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1))
	assert.Equal(t, err, nil)
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.carts.SetActiveTable("t1")
	env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1))

	items, _ := env.carts.Items("t1")
	err := env.carts.UpdateQuantity("t1", items[0].Line_id, 4)
	assert.Equal(t, err, nil)

	items, _ = env.carts.Items("t1")
	assert.Equal(t, items[0].Quantity, 4)
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.carts.SetActiveTable("t1")
	env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1))

	items, _ := env.carts.Items("t1")
	err := env.carts.UpdateQuantity("t1", items[0].Line_id, 0)
	assert.Equal(t, err, nil)

	items, _ = env.carts.Items("t1")
	assert.Equal(t, len(items), 0)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	env := newTestEnv()
	env.carts.SetActiveTable("t1")
	err := env.carts.UpdateQuantity("t1", "no-such-line", 2)
	assert.Equal(t, err, ErrUnknownItem)
}

func TestClearOnlyTouchesOwnTable(t *testing.T) {
	env := newTestEnv("t1", "t2")
	ctx := context.Background()
	env.carts.SetActiveTable("t1")
	env.carts.SetActiveTable("t2")
	env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1))
	env.carts.AddItem(ctx, "t2", foodLine("Pasta", 11.0, 1))

	env.carts.Clear("t1")

	items1, _ := env.carts.Items("t1")
	items2, _ := env.carts.Items("t2")
	assert.Equal(t, len(items1), 0)
	assert.Equal(t, len(items2), 1)
	assert.Equal(t, items2[0].Name, "Pasta")
}

func TestLoadForEditingReplacesWholeDraft(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.carts.SetActiveTable("t1")
	env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1))
	env.carts.AddItem(ctx, "t1", foodLine("Pasta", 11.0, 1))

	loaded := []models.DraftLineItem{
		{Line_id: "item-1", Name: "Soup", Price: 4.5, Quantity: 2, Item_type: models.ItemTypeFood},
	}
	env.carts.LoadForEditing("t1", loaded)

	items, err := env.carts.Items("t1")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(items), 1)
	assert.Equal(t, items[0].Name, "Soup")
	assert.Equal(t, items[0].Line_id, "item-1")
}

func TestSetActiveTableIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.carts.SetActiveTable("t1")
	env.carts.AddItem(ctx, "t1", foodLine("Burger", 8.5, 1))

	env.carts.SetActiveTable("t1")

	items, _ := env.carts.Items("t1")
	assert.Equal(t, len(items), 1)
}
