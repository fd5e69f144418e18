package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/DeadLyBro/teamly/src/clock"
	"github.com/gorilla/websocket"
)

type message struct {
	messageType int
	data        []byte
	err         error
}

type fakeConn struct {
	incoming  chan message
	writes    chan message
	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan message, 16),
		writes:   make(chan message, 64),
		closed:   make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case m := <-c.incoming:
		if m.err != nil {
			return 0, nil, m.err
		}
		return m.messageType, m.data, nil
	case <-c.closed:
		return 0, nil, net.ErrClosed
	}
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	select {
	case <-c.closed:
		return net.ErrClosed
	default:
	}
	c.writes <- message{messageType: messageType, data: data}
	return nil
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

// stallingConn blocks its first read until released and then returns
// frame even if the connection was closed meanwhile.
type stallingConn struct {
	*fakeConn
	frame   []byte
	reading chan struct{}
	release chan struct{}
	first   sync.Once
}

func newStallingConn(frame string) *stallingConn {
	return &stallingConn{
		fakeConn: newFakeConn(),
		frame:    []byte(frame),
		reading:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (c *stallingConn) ReadMessage() (int, []byte, error) {
	stalled := false
	c.first.Do(func() { stalled = true })
	if !stalled {
		return c.fakeConn.ReadMessage()
	}
	close(c.reading)
	<-c.release
	return websocket.TextMessage, c.frame, nil
}

type dialResult struct {
	conn Conn
	err  error
}

type fakeDialer struct {
	mu      sync.Mutex
	results []dialResult
	calls   int
	urls    []string
	headers []http.Header
}

func (d *fakeDialer) queue(results ...dialResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.results = append(d.results, results...)
}

func (d *fakeDialer) Dial(ctx context.Context, url string, header http.Header) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	d.urls = append(d.urls, url)
	d.headers = append(d.headers, header)
	if len(d.results) == 0 {
		return nil, errors.New("no connection queued")
	}
	next := d.results[0]
	d.results = d.results[1:]
	if next.err != nil {
		return nil, next.err
	}
	return next.conn, nil
}

func (d *fakeDialer) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

type closeEvent struct {
	code   int
	reason string
}

type recordingHandler struct {
	opened chan struct{}
	frames chan Frame
	closes chan closeEvent
	errors chan error
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{
		opened: make(chan struct{}, 16),
		frames: make(chan Frame, 16),
		closes: make(chan closeEvent, 16),
		errors: make(chan error, 16),
	}
}

func (h *recordingHandler) GatewayOpen()         { h.opened <- struct{}{} }
func (h *recordingHandler) GatewayFrame(f Frame) { h.frames <- f }
func (h *recordingHandler) GatewayClose(code int, reason string) {
	h.closes <- closeEvent{code: code, reason: reason}
}
func (h *recordingHandler) GatewayError(err error) { h.errors <- err }

type harness struct {
	gateway *Gateway
	dialer  *fakeDialer
	clock   *clock.FakeClock
	handler *recordingHandler
}

func newHarness(t *testing.T, reconnect ReconnectPolicy) *harness {
	t.Helper()
	h := &harness{
		dialer:  &fakeDialer{},
		clock:   clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		handler: newRecordingHandler(),
	}
	h.gateway = New(Config{
		URL:       "wss://gateway.test/ws",
		Token:     "secret",
		Dialer:    h.dialer,
		Clock:     h.clock,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Handler:   h.handler,
		Reconnect: reconnect,
	})
	t.Cleanup(func() { h.gateway.Disconnect() })
	return h
}

// connect queues conn and connects the gateway to it.
func (h *harness) connect(t *testing.T) *fakeConn {
	t.Helper()
	conn := newFakeConn()
	h.dialer.queue(dialResult{conn: conn})
	if err := h.gateway.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return conn
}
