package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SignatureVerifier validates a provider webhook signature. Implemented by
// the MercadoPago client; a nil-secret client accepts everything.
type SignatureVerifier interface {
	VerifyWebhookSignature(xSignature, xRequestID, dataID string) error
}

// WebhookSignatureMiddleware gates /webhook behind the provider's
// x-signature header. The signed data id arrives as the `data.id` query
// parameter alongside the JSON body.
func WebhookSignatureMiddleware(verifier SignatureVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := verifier.VerifyWebhookSignature(
			c.GetHeader("x-signature"),
			c.GetHeader("x-request-id"),
			c.Query("data.id"),
		)
		if err != nil {
			LoggerFromContext(c).Warn("webhook signature rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook signature"})
			return
		}
		c.Next()
	}
}
