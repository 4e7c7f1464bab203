package middleware

import (
	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TraceIDHeader   = "X-Trace-ID"
	TraceIDLocalKey = "traceID"
)

// TraceID echoes the caller's X-Trace-ID, or a fresh one, and attaches it to
// the request's user context for logger.TraceFromContext.
func (m *Middleware) TraceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}

		c.Set(TraceIDHeader, traceID)
		c.Locals(TraceIDLocalKey, traceID)
		c.SetUserContext(logger.ContextWithTraceID(c.UserContext(), traceID))

		return c.Next()
	}
}

func GetTraceID(c *fiber.Ctx) string {
	traceID, _ := c.Locals(TraceIDLocalKey).(string)
	return traceID
}
