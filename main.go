package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/DeadLyBro/teamly/src/client"
	"github.com/DeadLyBro/teamly/src/config"
	"github.com/DeadLyBro/teamly/src/gateway"
	"github.com/DeadLyBro/teamly/src/logging"
	"github.com/DeadLyBro/teamly/src/server"
	"github.com/DeadLyBro/teamly/src/structs"
	"github.com/spf13/pflag"
)

var signals = []os.Signal{
	os.Interrupt,
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	envFile := pflag.String("env", "", "dotenv file to load (default .env when present)")
	configFile := pflag.String("config", "", "optional YAML config file")
	statusAddr := pflag.String("status-addr", "", "address for the status server, empty disables it")
	reconnect := pflag.Bool("reconnect", false, "redial the gateway when the connection drops")
	pflag.Parse()

	cfg, err := config.Load(config.Options{EnvFile: *envFile, File: *configFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("status-addr") {
		cfg.StatusAddress = *statusAddr
	}
	if pflag.CommandLine.Changed("reconnect") {
		cfg.Reconnect = *reconnect
	}

	logger := slog.New(logging.NewHandler(os.Stderr, logging.Options{Level: cfg.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	c := client.New(client.Options{
		Token:      cfg.BotToken,
		GatewayURL: cfg.GatewayURL,
		APIBaseURL: cfg.APIURL,
		Strict:     cfg.StrictErrors,
		Reconnect:  gateway.ReconnectPolicy{Enabled: cfg.Reconnect},
		Logger:     logger,
	})
	registerHandlers(ctx, c, cfg, logger)

	if cfg.StatusAddress != "" {
		status := server.New(server.Options{Source: c, Token: cfg.StatusToken, Logger: logger})
		go func() {
			if err := status.Start(ctx, cfg.StatusAddress); err != nil {
				logger.Error("status server failed", "error", err)
			}
		}()
	}

	if err := c.Login(ctx); err != nil {
		logger.Error("login failed", "error", err)
		os.Exit(1)
	}
	<-ctx.Done()
	if err := c.Disconnect(); err != nil {
		logger.Error("disconnect", "error", err)
	}
}

func registerHandlers(ctx context.Context, c *client.Client, cfg config.Config, logger *slog.Logger) {
	c.OnReady(func(user structs.User) {
		logger.Info(fmt.Sprintf("Logged in as %s", user.Username))
	})

	c.OnMessageCreate(func(message structs.Message) {
		switch strings.ToLower(message.Content) {
		case "!ping":
			go ping(ctx, c, message, logger)
		case "!embed":
			go c.SendEmbed(ctx, message.ChannelID, "", []structs.MessageEmbed{{
				Title:       "Welcome!",
				Description: "Hello from Teamly!\n\nThis is an example embed.",
				Color:       0x00ff00,
				Footer: &structs.EmbedFooter{
					Text:    "Teamly Bot",
					IconURL: "https://example.com/icon.png",
				},
			}})
		}
	})

	c.OnUserLeftTeam(func(member structs.User, teamID string) {
		if cfg.NotifyChannelID == "" {
			return
		}
		go c.SendEmbed(ctx, cfg.NotifyChannelID, "", []structs.MessageEmbed{{
			Title:       "User Left",
			Description: fmt.Sprintf("User %s left the team.", member.Username),
			Color:       0xff0000,
		}})
	})

	c.OnDisconnect(func(code int, reason string) {
		logger.Warn("gateway closed", "code", code, "reason", reason)
	})
	c.OnError(func(err error) {
		logger.Error("gateway error", "error", err)
	})
}

// ping replies to the message, then edits the reply with the time the
// round trip took according to the server timestamps.
func ping(ctx context.Context, c *client.Client, message structs.Message, logger *slog.Logger) {
	reply, err := c.Reply(ctx, message.ChannelID, message.ID, fmt.Sprintf("Pong <@%s>!", message.CreatedBy.ID), nil)
	if err != nil || reply.ID == "" {
		return
	}
	start, err1 := time.Parse(time.RFC3339, message.CreatedAt)
	end, err2 := time.Parse(time.RFC3339, reply.CreatedAt)
	if err := errors.Join(err1, err2); err != nil {
		logger.Warn("cannot measure latency", "error", err)
		return
	}
	c.EditMessage(ctx, reply.ChannelID, reply.ID, "", &structs.MessageOptions{
		Embeds: []structs.MessageEmbed{{
			Title:       "🏓 Pong!",
			Description: fmt.Sprintf("Latency: %dms", end.Sub(start).Milliseconds()),
			Color:       0x00ff00,
		}},
	})
}
