package middleware

import (
	"net/http"
	"runtime/debug"
	"syscall"

	"awinfeed/internal/logger"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500. Broken pipes from clients that went away
// are dropped without logging.
func Recovery(logger *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(error); ok && (errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)) {
			c.Abort()
			return
		}

		if gin.IsDebugging() {
			logger.Error("[Recovery] panic recovered on %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, recovered, debug.Stack())
		} else {
			logger.Error("[Recovery] panic recovered: %v", recovered)
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
