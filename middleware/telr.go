package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/payments"
)

// TelrWebhookAuth verifies the gateway's tran_check signature. Sandbox mode
// skips the check.
func TelrWebhookAuth(cfg payments.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Sandbox {
			logger.Debug("sandbox mode: skipping webhook signature verification")
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form for signature verification"})
			c.Abort()
			return
		}

		provided := c.PostForm("tran_check")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing tran_check signature"})
			c.Abort()
			return
		}

		if cfg.WebhookSecret == "" || !payments.VerifySignature(cfg.WebhookSecret, c.Request.PostForm, provided) {
			logger.Warn("webhook signature mismatch", zap.String("cart_id", c.PostForm("tran_cartid")))
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
