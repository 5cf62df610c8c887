package services

import (
	"context"
	"testing"

	"go-restaurant-orders/models"

	"gopkg.in/go-playground/assert.v1"
)

func TestTransitionAcceptsPendingItem(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.createOrder(t, "t1", foodLine("Burger", 8.5, 2))
	itemID := order.Items[0].Order_item_id

	updated, err := env.status.Transition(ctx, order.Order_id, itemID, models.ItemAccepted)
	assert.Equal(t, err, nil)

	item := updated.FindItem(itemID)
	assert.Equal(t, item.Status, models.ItemAccepted)
	// nothing but the status moved
	assert.Equal(t, item.Name, "Burger")
	assert.Equal(t, item.Price, 8.5)
	assert.Equal(t, item.Quantity, 2)
}

func TestTransitionRejectsPendingAsTarget(t *testing.T) {
	env := newTestEnv()
	order := env.createOrder(t, "t1", foodLine("Burger", 8.5, 1))

	_, err := env.status.Transition(context.Background(), order.Order_id, order.Items[0].Order_item_id, models.ItemPending)
	assert.Equal(t, err, ErrInvalidTransition)
}

func TestTransitionIsNotIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.createOrder(t, "t1", foodLine("Burger", 8.5, 1))
	itemID := order.Items[0].Order_item_id

	_, err := env.status.Transition(ctx, order.Order_id, itemID, models.ItemAccepted)
	assert.Equal(t, err, nil)

	// a double submission is surfaced, not swallowed
	_, err = env.status.Transition(ctx, order.Order_id, itemID, models.ItemAccepted)
	assert.Equal(t, err, ErrInvalidTransition)

	_, err = env.status.Transition(ctx, order.Order_id, itemID, models.ItemRejected)
	assert.Equal(t, err, ErrInvalidTransition)
}

func TestTransitionUnknownItem(t *testing.T) {
	env := newTestEnv()
	order := env.createOrder(t, "t1", foodLine("Burger", 8.5, 1))

	_, err := env.status.Transition(context.Background(), order.Order_id, "no-such-item", models.ItemRejected)
	assert.Equal(t, err, ErrUnknownItem)
}

func TestTransitionReachesBatchItems(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.createOrder(t, "t1", foodLine("Burger", 8.5, 1))

	updated, err := env.service.Append(ctx, order.Order_id, []models.DraftLineItem{foodLine("Fries", 3.0, 1)})
	assert.Equal(t, err, nil)
	batchItemID := updated.Batches[0].Items[0].Order_item_id

	updated, err = env.status.Transition(ctx, order.Order_id, batchItemID, models.ItemRejected)
	assert.Equal(t, err, nil)
	assert.Equal(t, updated.Batches[0].Items[0].Status, models.ItemRejected)
	assert.Equal(t, updated.Batches[0].AggregateStatus(), string(models.ItemRejected))
}

func TestTransitionFailsOncePrinted(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.createOrder(t, "t1", foodLine("Burger", 8.5, 1), foodLine("Fries", 3.0, 1))
	env.status.Transition(ctx, order.Order_id, order.Items[0].Order_item_id, models.ItemAccepted)
	env.settlement.Print(ctx, order.Order_id)

	_, err := env.status.Transition(ctx, order.Order_id, order.Items[1].Order_item_id, models.ItemAccepted)
	assert.Equal(t, err, ErrOrderFrozen)
}

func TestBatchAggregateStatusMixes(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	order := env.createOrder(t, "t1", foodLine("Burger", 8.5, 1))

	updated, _ := env.service.Append(ctx, order.Order_id, []models.DraftLineItem{
		foodLine("Fries", 3.0, 1),
		foodLine("Soup", 4.5, 1),
	})
	batch := updated.Batches[0]
	assert.Equal(t, batch.AggregateStatus(), string(models.ItemPending))

	updated, _ = env.status.Transition(ctx, order.Order_id, batch.Items[0].Order_item_id, models.ItemAccepted)
	assert.Equal(t, updated.Batches[0].AggregateStatus(), models.BatchPartial)
}
