package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitBody stops reading the request body after limit bytes. Reads past
// the limit fail with *http.MaxBytesError. A limit of zero disables it.
func LimitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
