// Package server runs a small HTTP endpoint reporting the bot's
// gateway state, for health checks and dashboards.
package server

import (
	"context"
	"log/slog"

	"github.com/DeadLyBro/teamly/src/gateway"
	"github.com/DeadLyBro/teamly/src/structs"
	"github.com/gofiber/fiber/v3"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source reports what /status shows. *client.Client satisfies it.
type Source interface {
	State() gateway.State
	User() *structs.User
}

type Options struct {
	Source Source
	// Token, when set, is required as a bearer token on /status.
	Token  string
	Logger *slog.Logger
}

type Status struct {
	State string        `json:"state"`
	User  *structs.User `json:"user"`
}

type Server struct {
	router *fiber.App
	source Source
	token  string
	log    *slog.Logger
}

func New(opts Options) *Server {
	server := &Server{
		source: opts.Source,
		token:  opts.Token,
		log:    opts.Logger,
	}
	if server.log == nil {
		server.log = slog.Default()
	}
	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := fiber.New(fiber.Config{
		AppName:     "teamly-status",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	router.Use(server.RequestLogMiddleware)
	router.Get("/healthz", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	if server.token != "" {
		router.Use("/status", server.BearerTokenMiddleware)
	}
	router.Get("/status", server.handleStatus)
	server.router = router
}

func (server *Server) handleStatus(c fiber.Ctx) error {
	return c.JSON(Status{
		State: server.source.State().String(),
		User:  server.source.User(),
	})
}

// Start serves on addr until ctx is cancelled.
func (server *Server) Start(ctx context.Context, addr string) error {
	server.log.Info("status server start", "address", addr)
	return server.router.Listen(addr, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
		OnShutdownSuccess: func() {
			server.log.Info("status server stopped")
		},
	})
}
