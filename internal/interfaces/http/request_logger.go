package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// RequestLogger registra método, ruta, estado, latencia y el actor (id, rol, filial) de cada request.
// 5xx a nivel error.
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

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("actor_id", GetActorID(c)).
			Str("role", GetRole(c)).
			Int64("actor_branch_id", GetBranchID(c)).
			Msg("request")
		return err
	}
}
