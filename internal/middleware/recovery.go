package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const internalError = "internal server error"

// Recovery answers a panicking handler with 500 and logs the panic with the
// request id and caller. http.ErrAbortHandler is re-raised for net/http.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			actor, _ := actorFrom(c)
			c.Set("error", fmt.Sprint(rec))

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "handler panicked",
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("route", c.FullPath()),
				logger.String("user_id", actor.UserID),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": internalError})
		}()

		c.Next()
	}
}
