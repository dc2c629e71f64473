package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls the cross-origin policy for the API.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API.  ["*"] allows
	// every origin.
	AllowedOrigins []string

	// AllowedMethods lists the HTTP methods allowed on cross-origin requests.
	AllowedMethods []string

	// AllowedHeaders lists the request headers allowed on cross-origin
	// requests.
	AllowedHeaders []string

	// MaxAge is how long, in seconds, preflight results may be cached.
	MaxAge int
}

// DefaultCORSConfig allows every origin without credentials, suitable for the
// dashboard frontend during development.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		MaxAge:         600,
	}
}

// CORS applies the cross-origin policy and answers preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowAll := false
	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			allowAll = true
		}
		origins[o] = struct{}{}
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		allowed := allowAll
		if !allowed {
			_, allowed = origins[origin]
		}
		if !allowed {
			c.Next()
			return
		}

		h := c.Writer.Header()
		if allowAll {
			h.Set("Access-Control-Allow-Origin", "*")
		} else {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

//Personal.AI order the ending
