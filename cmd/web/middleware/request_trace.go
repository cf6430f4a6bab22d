package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"congress-tracker/cmd/internal/logger"
	"congress-tracker/cmd/web/httpclient"
	"congress-tracker/cmd/web/trace"
)

// RequestTrace assigns every inbound request a request id (reusing
// X-Request-Id when the caller sent one), echoes it in the response and logs
// the completed request.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(httpclient.HeaderRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		c.Request = c.Request.WithContext(trace.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set(httpclient.HeaderRequestID, requestID)

		// Keep every value of repeated keys (industry, committee).
		queryParams := map[string][]string{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		c.Next()

		fields := logger.Fields{
			"method":       c.Request.Method,
			"path":         c.Request.URL.Path,
			"query_params": queryParams,
			"status":       c.Writer.Status(),
			"duration":     time.Since(start).String(),
			"request_id":   requestID,
			"span_id":      trace.CurrentSpanID(c.Request.Context()),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}
