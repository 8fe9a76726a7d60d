package middleware

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourmap/internal/infra"
	"tourmap/pkg/logging"
)

var errRequestFailed = errors.New("request failed")

// Transaction runs every write request in a single transaction. The
// transaction is rolled back when the handler answers with an error status
// or records an error on the context. The handler's response is held back
// until the commit succeeds; a failed commit is answered with 500 instead.
func Transaction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := logging.GetFromContext(ctx)

		tx, err := infra.StartTransaction(ctx, db)
		if err != nil {
			logger.Error().Err(err).Msg("failed to start transaction")
			abortInternal(c)
			return
		}

		out := c.Writer
		buf := &bufferedWriter{ResponseWriter: out, status: out.Status()}

		released := false
		defer func() {
			c.Writer = out
			if !released {
				_ = infra.ReleaseTransaction(ctx, tx, errRequestFailed)
			}
		}()

		c.Writer = buf
		c.Request = c.Request.WithContext(infra.WithTx(ctx, tx))
		c.Next()

		var outcome error
		switch {
		case len(c.Errors) > 0:
			outcome = c.Errors.Last()
		case buf.status >= http.StatusBadRequest:
			outcome = errRequestFailed
		}

		released = true
		c.Writer = out
		if err := infra.ReleaseTransaction(ctx, tx, outcome); err != nil && outcome == nil {
			_ = c.Error(err)
			abortInternal(c)
			return
		}
		buf.flush()
	}
}

func abortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"status":   "error",
		"code":     http.StatusInternalServerError,
		"message":  "Internal server error",
		"trace_id": c.GetString("trace_id"),
	})
}

// bufferedWriter keeps status and body in memory until flush.
type bufferedWriter struct {
	gin.ResponseWriter
	status int
	wrote  bool
	body   bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(code int) {
	if code > 0 && !w.wrote {
		w.status = code
	}
}

func (w *bufferedWriter) WriteHeaderNow() {
	w.wrote = true
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	w.wrote = true
	return w.body.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.wrote = true
	return w.body.WriteString(s)
}

func (w *bufferedWriter) Status() int {
	return w.status
}

func (w *bufferedWriter) Size() int {
	if !w.wrote {
		return -1
	}
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.wrote
}

func (w *bufferedWriter) flush() {
	w.ResponseWriter.WriteHeader(w.status)
	if w.body.Len() == 0 {
		w.ResponseWriter.WriteHeaderNow()
		return
	}
	_, _ = w.ResponseWriter.Write(w.body.Bytes())
}
