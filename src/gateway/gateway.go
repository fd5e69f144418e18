package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/DeadLyBro/teamly/src/clock"
	"github.com/gorilla/websocket"
	"github.com/sasha-s/go-csync"
)

const (
	DefaultURL               = "wss://api.teamly.one/api/v1/ws"
	DefaultHeartbeatInterval = 20 * time.Second
)

const (
	CloseNormal   = websocket.CloseNormalClosure
	CloseAbnormal = websocket.CloseAbnormalClosure
)

type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

var (
	ErrAlreadyConnected = errors.New("gateway: already connected")
	ErrNotConnected     = errors.New("gateway: not connected")
	ErrReconnectFailed  = errors.New("gateway: reconnect attempts exhausted")
	ErrMalformedFrame   = errors.New("gateway: malformed frame")
	ErrConnectAborted   = errors.New("gateway: disconnected while dialing")
)

// Handler receives the gateway's connection lifecycle and inbound frames.
// GatewayFrame is called on the reader goroutine, one frame at a time, in
// arrival order.
type Handler interface {
	GatewayOpen()
	GatewayFrame(Frame)
	GatewayClose(code int, reason string)
	GatewayError(error)
}

// ReconnectPolicy controls redialing after the transport drops. The
// zero value disables it.
type ReconnectPolicy struct {
	Enabled     bool
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// delay returns the wait before the given attempt, starting at 1.
func (p ReconnectPolicy) delay(attempt int) time.Duration {
	d := math.Pow(2, float64(attempt-1)) * float64(p.BaseDelay)
	if d > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(d)
}

type Config struct {
	URL               string
	Token             string
	Dialer            Dialer
	Clock             clock.Clock
	Logger            *slog.Logger
	Handler           Handler
	HeartbeatInterval time.Duration
	Reconnect         ReconnectPolicy
}

type Gateway struct {
	mu              sync.Mutex
	state           State
	epoch           uint64
	conn            Conn
	heartbeat       *heartbeat
	cancelReconnect context.CancelFunc

	// writeMu serialises every write to the transport.
	writeMu csync.Mutex

	url               string
	token             string
	dialer            Dialer
	clock             clock.Clock
	handler           Handler
	heartbeatInterval time.Duration
	reconnect         ReconnectPolicy
	log               *slog.Logger
}

type heartbeat struct {
	ticker *clock.Ticker
	done   chan struct{}
}

func New(cfg Config) *Gateway {
	g := &Gateway{
		state:             StateDisconnected,
		url:               cfg.URL,
		token:             cfg.Token,
		dialer:            cfg.Dialer,
		clock:             cfg.Clock,
		handler:           cfg.Handler,
		heartbeatInterval: cfg.HeartbeatInterval,
		reconnect:         cfg.Reconnect,
		log:               cfg.Logger,
	}
	if g.url == "" {
		g.url = DefaultURL
	}
	if g.dialer == nil {
		g.dialer = NewDialer(nil)
	}
	if g.clock == nil {
		g.clock = clock.Real()
	}
	if g.handler == nil {
		g.handler = nopHandler{}
	}
	if g.heartbeatInterval <= 0 {
		g.heartbeatInterval = DefaultHeartbeatInterval
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	if g.reconnect.MaxAttempts <= 0 {
		g.reconnect.MaxAttempts = 5
	}
	if g.reconnect.BaseDelay <= 0 {
		g.reconnect.BaseDelay = time.Second
	}
	if g.reconnect.MaxDelay <= 0 {
		g.reconnect.MaxDelay = 30 * time.Second
	}
	return g
}

func (g *Gateway) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Connect dials the gateway. It blocks until the websocket handshake
// completes; heartbeating and frame delivery then run in the background.
func (g *Gateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	if g.state != StateDisconnected {
		g.mu.Unlock()
		return ErrAlreadyConnected
	}
	g.state = StateConnecting
	g.epoch++
	epoch := g.epoch
	g.mu.Unlock()

	g.log.Info("connecting to teamly gateway", "url", g.url)
	conn, err := g.dial(ctx)
	if err != nil {
		g.mu.Lock()
		if g.epoch == epoch {
			g.state = StateDisconnected
		}
		g.mu.Unlock()
		g.log.Error("failed to connect to gateway", "error", err)
		g.handler.GatewayError(err)
		return err
	}

	g.mu.Lock()
	if g.epoch != epoch || g.state != StateConnecting {
		g.mu.Unlock()
		conn.Close()
		return ErrConnectAborted
	}
	g.conn = conn
	g.state = StateConnected
	g.startHeartbeatLocked(conn)
	g.mu.Unlock()

	g.log.Info("gateway connected")
	g.handler.GatewayOpen()
	go g.listen(conn)
	return nil
}

func (g *Gateway) dial(ctx context.Context) (Conn, error) {
	header := http.Header{}
	header.Set("Authorization", fmt.Sprintf("Bot %s", g.token))
	conn, err := g.dialer.Dial(ctx, g.url, header)
	if err != nil {
		return nil, fmt.Errorf("gateway: dial: %w", err)
	}
	return conn, nil
}

// Disconnect closes the connection with a normal closure. Calling it
// while disconnected does nothing.
func (g *Gateway) Disconnect() error {
	g.mu.Lock()
	switch g.state {
	case StateDisconnected:
		g.mu.Unlock()
		return nil
	case StateConnecting:
		g.state = StateDisconnected
		g.epoch++
		g.mu.Unlock()
		return nil
	case StateReconnecting:
		g.cancelReconnect()
		g.cancelReconnect = nil
		g.state = StateDisconnected
		g.mu.Unlock()
		g.log.Info("gateway reconnect cancelled")
		return nil
	}
	conn := g.conn
	g.conn = nil
	g.stopHeartbeatLocked()
	g.state = StateDisconnected
	g.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	closeMessage := websocket.FormatCloseMessage(CloseNormal, "")
	if err := g.write(ctx, conn, websocket.CloseMessage, closeMessage); err != nil {
		g.log.Debug("failed to send close frame", "error", err)
	}
	err := conn.Close()
	g.log.Info("gateway connection stopped.")
	g.handler.GatewayClose(CloseNormal, "")
	if err != nil {
		return fmt.Errorf("gateway: close: %w", err)
	}
	return nil
}

// Send writes an envelope on the current connection.
func (g *Gateway) Send(ctx context.Context, e Envelope) error {
	g.mu.Lock()
	conn := g.conn
	g.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	data, err := encodeEnvelope(e)
	if err != nil {
		return err
	}
	return g.write(ctx, conn, websocket.TextMessage, data)
}

func (g *Gateway) write(ctx context.Context, conn Conn, messageType int, data []byte) error {
	if err := g.writeMu.CLock(ctx); err != nil {
		return err
	}
	defer g.writeMu.Unlock()
	return conn.WriteMessage(messageType, data)
}

func (g *Gateway) isCurrent(conn Conn) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn == conn
}

func (g *Gateway) listen(conn Conn) {
	for {
		if !g.isCurrent(conn) {
			// A newer connection replaced this one; exit quietly.
			return
		}
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			g.connectionLost(conn, err)
			return
		}
		frame, err := decodeFrame(messageType, message)
		if err != nil {
			g.log.Warn("dropping gateway message", "error", err, "sample", sample(message))
			continue
		}
		// Disconnect may have run while this frame was read or decoded.
		if !g.isCurrent(conn) {
			g.log.Debug("dropping frame read before disconnect", "tag", frame.Tag)
			return
		}
		g.handler.GatewayFrame(frame)
	}
}

func (g *Gateway) connectionLost(conn Conn, err error) {
	g.mu.Lock()
	if g.conn != conn {
		g.mu.Unlock()
		return
	}
	g.conn = nil
	g.stopHeartbeatLocked()
	var reconnectCtx context.Context
	if g.reconnect.Enabled {
		g.state = StateReconnecting
		reconnectCtx, g.cancelReconnect = context.WithCancel(context.Background())
	} else {
		g.state = StateDisconnected
	}
	g.mu.Unlock()
	conn.Close()

	code, reason := CloseAbnormal, ""
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		code, reason = closeErr.Code, closeErr.Text
	} else {
		g.log.Error("gateway read failed", "error", err)
		g.handler.GatewayError(fmt.Errorf("gateway: read: %w", err))
	}
	g.log.Info("gateway connection closed", "code", code, "reason", reason)
	g.handler.GatewayClose(code, reason)

	if reconnectCtx != nil {
		go g.reconnectLoop(reconnectCtx)
	}
}

func (g *Gateway) reconnectLoop(ctx context.Context) {
	for attempt := 1; attempt <= g.reconnect.MaxAttempts; attempt++ {
		delay := g.reconnect.delay(attempt)
		g.log.Warn("reconnecting to gateway", "attempt", attempt, "delay", delay)
		select {
		case <-g.clock.After(delay):
		case <-ctx.Done():
			return
		}

		conn, err := g.dial(ctx)
		if err != nil {
			g.log.Error("reconnect attempt failed", "attempt", attempt, "error", err)
			continue
		}

		g.mu.Lock()
		if ctx.Err() != nil || g.state != StateReconnecting {
			g.mu.Unlock()
			conn.Close()
			return
		}
		g.cancelReconnect()
		g.cancelReconnect = nil
		g.conn = conn
		g.state = StateConnected
		g.startHeartbeatLocked(conn)
		g.mu.Unlock()

		g.log.Info("gateway reconnected", "attempt", attempt)
		g.handler.GatewayOpen()
		go g.listen(conn)
		return
	}

	g.mu.Lock()
	if ctx.Err() != nil || g.state != StateReconnecting {
		g.mu.Unlock()
		return
	}
	g.cancelReconnect()
	g.cancelReconnect = nil
	g.state = StateDisconnected
	g.mu.Unlock()
	g.log.Error("gave up reconnecting to gateway", "attempts", g.reconnect.MaxAttempts)
	g.handler.GatewayError(ErrReconnectFailed)
}

// startHeartbeatLocked replaces any running heartbeat with a fresh one
// bound to conn. Callers hold g.mu.
func (g *Gateway) startHeartbeatLocked(conn Conn) {
	g.stopHeartbeatLocked()
	hb := &heartbeat{
		ticker: g.clock.NewTicker(g.heartbeatInterval),
		done:   make(chan struct{}),
	}
	g.heartbeat = hb
	go g.heartbeating(conn, hb)
}

func (g *Gateway) stopHeartbeatLocked() {
	if g.heartbeat == nil {
		return
	}
	g.heartbeat.ticker.Stop()
	close(g.heartbeat.done)
	g.heartbeat = nil
	g.log.Debug("gateway heartbeat ticker stopped.")
}

func (g *Gateway) heartbeating(conn Conn, hb *heartbeat) {
	data, err := encodeEnvelope(heartbeatEnvelope)
	if err != nil {
		g.log.Error("failed to encode heartbeat", "error", err)
		return
	}
	for {
		select {
		case <-hb.done:
			return
		case <-hb.ticker.C:
			select {
			case <-hb.done:
				return
			default:
			}
			if err := g.write(context.Background(), conn, websocket.TextMessage, data); err != nil {
				g.log.Error("failed to send heartbeat event", "error", err)
				continue
			}
			g.log.Debug("gateway heartbeat event sent")
		}
	}
}

type nopHandler struct{}

func (nopHandler) GatewayOpen()             {}
func (nopHandler) GatewayFrame(Frame)       {}
func (nopHandler) GatewayClose(int, string) {}
func (nopHandler) GatewayError(error)       {}
