package utils

import "github.com/gin-gonic/gin"

// Error writes a JSON error payload with the given HTTP status. Callers only
// distinguish client errors (missing fields) from server-side store failures.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}
