package controllers

import (
	"errors"
	"net/http"

	"go-restaurant-orders/database"
	"go-restaurant-orders/models"
	"go-restaurant-orders/repository"
	"go-restaurant-orders/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var (
	orderRepo         = repository.NewOrderRepository(orderCollection)
	tableRepo         = repository.NewTableRepository(tableCollection)
	foodCatalog       = repository.NewFoodCatalog(foodCollection)
	cartStore         = services.NewCartStore(foodCatalog)
	orderService      = services.NewOrderService(orderRepo, tableRepo, cartStore, hub)
	statusService     = services.NewStatusService(orderRepo)
	settlementService = services.NewSettlementService(orderRepo, tableRepo)
)

// respondError maps the domain error taxonomy onto HTTP statuses. State
// precondition failures are 409s: the caller holds a stale view and should
// refresh before retrying.
func respondError(c *gin.Context, err error) {
	var immutable *services.ImmutableItemError
	switch {
	case errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrTableNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &immutable),
		errors.Is(err, services.ErrOrderFrozen):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "message": "this item was already decided, refresh your screen"})
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrTableOccupied),
		errors.Is(err, services.ErrPaymentLocked),
		errors.Is(err, services.ErrUnknownItem),
		errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNothingToBill):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "message": "nothing to print yet"})
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrNoTableSelected),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidPayment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// orderView decorates the stored order with the derived per-batch status for
// display. Persistence never stores the derived value.
func orderView(order *models.Order) gin.H {
	batches := make([]gin.H, 0, len(order.Batches))
	for _, b := range order.Batches {
		batches = append(batches, gin.H{
			"batch_id":         b.Batch_id,
			"created_at":       b.Created_at,
			"aggregate_status": b.AggregateStatus(),
			"items":            b.Items,
		})
	}
	return gin.H{
		"order_id":          order.Order_id,
		"table_id":          order.Table_id,
		"cashier_status":    order.Cashier_status,
		"payment_option":    order.Payment_option,
		"receipt_reference": order.Receipt_reference,
		"items":             order.Items,
		"batches":           batches,
		"bill_total":        services.BillTotal(order),
		"version":           order.Version,
		"created_at":        order.Created_at,
		"updated_at":        order.Updated_at,
	}
}

type createOrderRequest struct {
	Table_id string `json:"table_id" validate:"required"`
}

type orderLinesRequest struct {
	Items []models.DraftLineItem `json:"items"`
}

func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		uid := c.GetString("uid")
		order, err := orderService.Create(c.Request.Context(), req.Table_id, &uid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func EditOrderItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		var req orderLinesRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, line := range req.Items {
			if validationErr := validate.Struct(&line); validationErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
				return
			}
		}

		order, err := orderService.Edit(c.Request.Context(), orderId, req.Items)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func AppendOrderItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		var req orderLinesRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, line := range req.Items {
			if validationErr := validate.Struct(&line); validationErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
				return
			}
		}

		order, err := orderService.Append(c.Request.Context(), orderId, req.Items)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := orderService.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		views := make([]gin.H, 0, len(orders))
		for i := range orders {
			views = append(views, orderView(&orders[i]))
		}
		c.JSON(http.StatusOK, views)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		order, err := orderService.Get(c.Request.Context(), orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func GetOrderBill() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		order, err := orderService.Get(c.Request.Context(), orderId)
		if err != nil {
			respondError(c, err)
			return
		}

		accepted := []models.OrderItem{}
		for _, item := range order.AllItems() {
			if item.Status == models.ItemAccepted {
				accepted = append(accepted, *item)
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"order_id":       order.Order_id,
			"table_id":       order.Table_id,
			"cashier_status": order.Cashier_status,
			"payment_option": order.Payment_option,
			"items":          accepted,
			"bill_total":     services.BillTotal(order),
		})
	}
}
