package telrControllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/orders"
)

// PaymentRecorder is the part of the order store the webhook needs.
type PaymentRecorder interface {
	MarkPaid(ctx context.Context, orderRef, gatewayRef string) error
}

// POST /payment/webhook
//
// The gateway posts a form with tran_cartid (our order reference),
// tran_ref and tran_status, where "A" means authorised.
func TelrWebhookHandler(recorder PaymentRecorder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.PostForm("tran_cartid")
		tranStatus := c.PostForm("tran_status")
		tranRef := c.PostForm("tran_ref")

		if cartID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing tran_cartid"})
			return
		}

		log := logger.With(zap.String("cart_id", cartID), zap.String("tran_ref", tranRef))
		if tranStatus != "A" {
			log.Info("payment not authorised", zap.String("tran_status", tranStatus))
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		if err := recorder.MarkPaid(c.Request.Context(), cartID, tranRef); err != nil {
			if errors.Is(err, orders.ErrNotFound) {
				log.Warn("webhook for unknown order")
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			log.Error("failed to mark order paid", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
			return
		}

		log.Info("💰 order paid")
		c.JSON(http.StatusOK, gin.H{"message": "Payment recorded successfully"})
	}
}
