package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kindred/pkg/utils"
)

const traceHeader = "X-Trace-ID"

// TraceIDMiddleware reuses an incoming X-Trace-ID when it parses as a uuid.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set(utils.ContextTraceID, traceID)
		c.Writer.Header().Set(traceHeader, traceID)
		c.Next()
	}
}
