package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds the security headers relevant to a JSON API.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// API responses are never meant to be framed
		c.Header("X-Frame-Options", "DENY")

		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Submissions carry personal data; keep them out of shared caches
		if c.Request.Method != "GET" {
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}
