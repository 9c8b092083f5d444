package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/passmanager/internal/auth"
	"github.com/mrlokans/passmanager/internal/logutil"
)

// RequestLogger attaches logger to each request context and logs one line per
// request once the handler chain finishes. Bodies are never logged.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(logutil.WithLogger(c.Request.Context(), logger))

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Info()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start))
		if userID := auth.GetUserID(c); userID != "" {
			event = event.Str("user_id", userID)
		}
		event.Msg("request")
	}
}
