package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/distribuidora-pdv/pkg/logger"
)

// LocalRequestID key del identificador de la petición en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger asigna un request id y registra cada petición con método,
// ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("http request")
		return err
	}
}
