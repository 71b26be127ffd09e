package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const allowedMethods = "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS"

// CORSMiddleware allows the configured front-end origins to call the API
// with any method and header, credentials included.
//
// Requests without an Origin header (health checks, server-to-server) pass
// untouched. A request carrying any other Origin is refused with 403 before
// it reaches a handler, except on openPaths where it is served without CORS
// headers. Preflights from allowed origins end here with 204.
func CORSMiddleware(allowedOrigins []string, openPaths ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}
	open := make(map[string]bool, len(openPaths))
	for _, p := range openPaths {
		open[p] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if origin == "" {
			c.Next()
			return
		}

		if !allowed[origin] {
			if open[c.Request.URL.Path] && !isPreflight(c.Request) {
				c.Next()
				return
			}
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")

		if isPreflight(c.Request) {
			headers := c.Request.Header.Get("Access-Control-Request-Headers")
			if headers == "" {
				headers = "*"
			}
			c.Header("Access-Control-Allow-Methods", allowedMethods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Max-Age", "600")
			c.Writer.Header().Add("Vary", "Access-Control-Request-Method")
			c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
