package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoCache marks responses as uncacheable. Session-scoped payloads such as
// course lists and feedback state must never be replayed to another user
// by a browser cache or an intermediary.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("Surrogate-Control", "no-store")

		c.Next()
	}
}
