package response

import (
	"github.com/gin-gonic/gin"
)

// The wire shapes below are fixed for compatibility with existing
// clients of the document generator; do not restructure them.

// Documents writes the success envelope of the generation endpoint.
func Documents(c *gin.Context, status int, documents any) {
	c.JSON(status, gin.H{
		"success":   true,
		"documents": documents,
	})
}

// Error writes the flat error envelope used by every failure path.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}

// Message writes an informational payload (e.g. the stateless download
// hint) without the success flag.
func Message(c *gin.Context, status int, fields gin.H) {
	c.JSON(status, fields)
}
