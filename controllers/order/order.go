package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/orders"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderID must be a positive number"})
		return 0, false
	}
	return uint(id), true
}

func writeStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, orders.ErrInvalidStatus),
		errors.Is(err, orders.ErrInvalidPayStatus),
		errors.Is(err, orders.ErrNoPaymentLink):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, orders.ErrGatewayNotEnabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// -------- Handlers --------

// GET /admin/orders
func GetAllOrdersHandler(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /admin/orders/:orderID accepts a numeric id, an order number or an
// order reference.
func GetOrderByIDHandler(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("orderID")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := store.Get(c.Request.Context(), key)
		if err != nil {
			writeStoreError(c, err, "failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// Update order status
func UpdateOrderStatusHandler(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := store.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
			writeStoreError(c, err, "failed to update order status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// Update payment status
func UpdatePaymentStatusHandler(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := store.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
			writeStoreError(c, err, "failed to update payment status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// Resend payment link
func ResendPaymentLinkHandler(store *orders.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		url, err := store.ResendPaymentLink(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, orders.ErrNotFound) && !errors.Is(err, orders.ErrNoPaymentLink) && !errors.Is(err, orders.ErrGatewayNotEnabled) {
				logger.Error("payment link request failed", zap.Uint("order_id", id), zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			writeStoreError(c, err, "failed to create payment link")
			return
		}
		c.JSON(http.StatusOK, gin.H{"payment_url": url})
	}
}

// Delete order
func DeleteOrderHandler(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		if err := store.Delete(c.Request.Context(), id); err != nil {
			writeStoreError(c, err, "failed to delete order")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
