package document

import (
	"github.com/gin-gonic/gin"

	"github.com/lifeofgurpreet/hr-document-generator/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/", handler.Index)
	r.GET("/healthz", handler.Health)
	r.GET("/download/:filename", handler.Download)

	// Each generation request can fan out to the paid backend, so the
	// endpoint is throttled per client IP.
	r.POST("/generate-documents", middleware.RateLimitByIP(5, 10), handler.Generate)
}
