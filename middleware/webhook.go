package middleware

import (
	"crypto/sha1"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// GatewayWebhookAuth verifies the payment provider's webhook signature.
// Sandbox/dev mode skips the check so local gateways can post unsigned.
func GatewayWebhookAuth() gin.HandlerFunc {
	secretKey := os.Getenv("GATEWAY_WEBHOOK_SECRET")
	if secretKey == "" {
		panic("GATEWAY_WEBHOOK_SECRET is not set")
	}

	mode := strings.ToLower(os.Getenv("GATEWAY_MODE"))

	return func(c *gin.Context) {
		if mode == "sandbox" || mode == "dev" {
			log.Println("Sandbox/dev mode: skipping webhook signature verification")
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form for signature verification"})
			c.Abort()
			return
		}

		providedCheck := c.PostForm("tran_check")
		if providedCheck == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing tran_check signature"})
			c.Abort()
			return
		}

		// Field order is fixed by the provider's signature scheme.
		fieldList := []string{
			"tran_store", "tran_type", "tran_class", "tran_test", "tran_ref",
			"tran_prevref", "tran_firstref", "tran_order", "tran_currency",
			"tran_amount", "tran_cartid", "tran_desc", "tran_status",
			"tran_authcode", "tran_authmessage",
		}

		parts := []string{secretKey}
		for _, f := range fieldList {
			parts = append(parts, strings.TrimSpace(c.PostForm(f)))
		}

		h := sha1.New()
		h.Write([]byte(strings.Join(parts, ":")))
		calculated := hex.EncodeToString(h.Sum(nil))

		if !strings.EqualFold(calculated, providedCheck) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
