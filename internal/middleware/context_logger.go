package middleware

import (
	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger carrying the request ID
// so every log line produced while generating a batch can be correlated.
// Must run after RequestID().
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString(contextutil.GetKey())

		reqLogger := logger.With(
			zap.String("request_id", rid),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
