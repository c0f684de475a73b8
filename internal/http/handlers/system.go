package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "back-office gateway running"})
}

// Entry is the public entry point unauthenticated requests are redirected
// to. The SPA bundle is served from here in deployment; the gateway itself
// only confirms the route exists.
func Entry(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "back-office dashboard entry"})
}
