package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Tatang94/cryptomarketcap/config"
)

// RequestLogger tags each request with a uuid and logs method, path, status
// and latency once the handler chain returns.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		config.Logger.Infof("%s %s %d %s request_id=%s",
			c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start), requestID)

		return err
	}
}
