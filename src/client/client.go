// Package client is the entry point of the SDK. A Client holds one
// gateway connection, turns its frames into named events, and exposes
// the REST endpoints directly.
package client

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/DeadLyBro/teamly/src/api"
	"github.com/DeadLyBro/teamly/src/clock"
	"github.com/DeadLyBro/teamly/src/events"
	"github.com/DeadLyBro/teamly/src/gateway"
	"github.com/DeadLyBro/teamly/src/rest"
	"github.com/DeadLyBro/teamly/src/structs"
	"github.com/DeadLyBro/teamly/src/webhook"
)

type Options struct {
	Token      string
	GatewayURL string
	APIBaseURL string
	// Strict makes REST calls return their errors instead of logging
	// them and answering with an empty result.
	Strict     bool
	Reconnect  gateway.ReconnectPolicy
	HTTPClient *http.Client
	Dialer     gateway.Dialer
	Clock      clock.Clock
	Logger     *slog.Logger
}

type Client struct {
	*api.API
	Webhooks *webhook.Client

	gateway *gateway.Gateway
	emitter *events.Emitter
	log     *slog.Logger

	mu   sync.RWMutex
	user *structs.User
}

func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		emitter: events.NewEmitter(logger),
		log:     logger,
	}
	restClient := rest.New(rest.Config{
		BaseURL:    opts.APIBaseURL,
		Token:      opts.Token,
		HTTPClient: opts.HTTPClient,
		Logger:     logger,
	})
	c.API = api.New(api.Config{REST: restClient, Logger: logger, Strict: opts.Strict})
	c.Webhooks = webhook.New(webhook.Config{BaseURL: opts.APIBaseURL, Strict: opts.Strict, Logger: logger})
	c.gateway = gateway.New(gateway.Config{
		URL:       opts.GatewayURL,
		Token:     opts.Token,
		Dialer:    opts.Dialer,
		Clock:     opts.Clock,
		Logger:    logger,
		Handler:   gatewayHandler{c},
		Reconnect: opts.Reconnect,
	})
	return c
}

// Login connects to the gateway. Events start arriving once it returns.
func (c *Client) Login(ctx context.Context) error {
	return c.Connect(ctx)
}

func (c *Client) Connect(ctx context.Context) error {
	return c.gateway.Connect(ctx)
}

func (c *Client) Disconnect() error {
	return c.gateway.Disconnect()
}

func (c *Client) State() gateway.State {
	return c.gateway.State()
}

// User returns the account the session is logged in as, or nil before
// the first ready event.
func (c *Client) User() *structs.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Client) On(name events.Name, handler events.Handler) events.Subscription {
	return c.emitter.On(name, handler)
}

func (c *Client) Once(name events.Name, handler events.Handler) events.Subscription {
	return c.emitter.Once(name, handler)
}

func (c *Client) Off(sub events.Subscription) bool {
	return c.emitter.Off(sub)
}

func (c *Client) dispatch(frame gateway.Frame) {
	mapping, ok := events.Lookup(frame.Tag)
	if !ok {
		c.log.Debug("ignoring unknown gateway event", "tag", frame.Tag)
		return
	}
	args, err := mapping.Extract(frame.Data)
	if err != nil {
		c.log.Warn("dropping gateway event", "tag", frame.Tag, "error", err)
		return
	}
	if frame.Tag == events.TagReady {
		user := args[0].(structs.User)
		c.mu.Lock()
		c.user = &user
		c.mu.Unlock()
		c.log.Info("logged in", "username", user.Username, "id", user.ID)
	}
	c.emitter.Emit(mapping.Event, args...)
}

// gatewayHandler keeps the gateway callbacks off Client's exported
// method set.
type gatewayHandler struct {
	c *Client
}

func (h gatewayHandler) GatewayOpen() {
	h.c.log.Debug("gateway open")
}

func (h gatewayHandler) GatewayFrame(frame gateway.Frame) {
	h.c.dispatch(frame)
}

func (h gatewayHandler) GatewayClose(code int, reason string) {
	h.c.emitter.Emit(events.Disconnect, code, reason)
}

func (h gatewayHandler) GatewayError(err error) {
	h.c.emitter.Emit(events.Error, err)
}
