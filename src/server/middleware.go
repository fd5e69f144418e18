package server

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

// BearerTokenMiddleware rejects requests whose Authorization header does
// not carry the configured token.
func (server *Server) BearerTokenMiddleware(c fiber.Ctx) error {
	auth := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).SendString("missing bearer token")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(server.token)) != 1 {
		return c.Status(fiber.StatusUnauthorized).SendString("invalid bearer token")
	}
	return c.Next()
}

func (server *Server) RequestLogMiddleware(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	server.log.Debug("status request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return err
}
