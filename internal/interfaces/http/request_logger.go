package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/dolphin-crm/pkg/logger"
)

// RequestLogger registra cada request con método, ruta, status, duración y el
// request id puesto por el middleware requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", requestIDFromCtx(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")

		return err
	}
}

func requestIDFromCtx(c *fiber.Ctx) string {
	v := c.Locals(requestid.ConfigDefault.ContextKey)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
