package mw

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderXRequestID = "X-Request-ID"

// RequestID accepts a client-supplied X-Request-ID when it is a valid UUID
// and generates one otherwise, echoing the final id back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := ""
		if raw := c.GetHeader(HeaderXRequestID); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				rid = id.String()
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(HeaderXRequestID, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ContextKeyRequestID, rid))
		c.Next()
	}
}
