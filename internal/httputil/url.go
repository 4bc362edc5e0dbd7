package httputil

import (
	"github.com/gin-gonic/gin"
)

// ContextURL is the key the base URL is stored under in the gin context.
const ContextURL = "baseURL"

// URL returns the base URL the backend is reachable under.
func URL(c *gin.Context) string {
	return c.GetString(ContextURL)
}
