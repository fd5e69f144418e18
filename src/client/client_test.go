package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/DeadLyBro/teamly/src/clock"
	"github.com/DeadLyBro/teamly/src/events"
	"github.com/DeadLyBro/teamly/src/gateway"
	"github.com/DeadLyBro/teamly/src/structs"
	"github.com/DeadLyBro/teamly/src/testutil"
	"github.com/gorilla/websocket"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEndToEnd(t *testing.T) {
	auth := make(chan string, 1)
	received := make(chan string, 16)
	closeNow := make(chan struct{})

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade: %v", err)
			return
		}
		defer conn.Close()

		readDone := make(chan struct{})
		go func() {
			defer close(readDone)
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				received <- string(data)
			}
		}()

		for _, frame := range []string{
			`{"t":"READY","d":{"user":{"id":"b1","username":"teamly-bot","bot":true}}}`,
			`{"t":"SOMETHING_NEW","d":{}}`,
			`{"t":"MESSAGE_SEND","d":{"message":{"id":"m1","channelId":"c1","content":"!ping"}}}`,
		} {
			conn.WriteMessage(websocket.TextMessage, []byte(frame))
		}

		<-closeNow
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(4000, "bye"))
		<-readDone
	}))
	defer srv.Close()

	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := New(Options{
		Token:      "tok",
		GatewayURL: "ws" + strings.TrimPrefix(srv.URL, "http"),
		APIBaseURL: srv.URL,
		Clock:      fake,
		Logger:     discardLogger(),
	})

	type readyCall struct {
		user     structs.User
		snapshot *structs.User
	}
	ready := make(chan readyCall, 4)
	messages := make(chan structs.Message, 4)
	disconnects := make(chan [2]any, 4)
	c.OnReady(func(user structs.User) { ready <- readyCall{user, c.User()} })
	c.OnMessageCreate(func(message structs.Message) { messages <- message })
	c.OnDisconnect(func(code int, reason string) { disconnects <- [2]any{code, reason} })

	if err := c.Login(context.Background()); err != nil {
		t.Fatalf("Login: %v", err)
	}
	defer c.Disconnect()

	if got := testutil.RequireReceive(t, auth, "waiting for handshake"); got != "Bot tok" {
		t.Errorf("Authorization = %q", got)
	}

	r := testutil.RequireReceive(t, ready, "waiting for ready")
	if r.user.Username != "teamly-bot" {
		t.Errorf("ready user = %+v", r.user)
	}
	if r.snapshot == nil || r.snapshot.ID != "b1" {
		t.Errorf("snapshot during ready = %+v", r.snapshot)
	}

	m := testutil.RequireReceive(t, messages, "waiting for messageCreate")
	if m.ID != "m1" || m.Content != "!ping" {
		t.Errorf("message = %+v", m)
	}

	fake.Advance(gateway.DefaultHeartbeatInterval)
	if hb := testutil.RequireReceive(t, received, "waiting for heartbeat"); hb != `{"t":"HEARTBEAT","d":{}}` {
		t.Errorf("heartbeat = %s", hb)
	}

	close(closeNow)
	d := testutil.RequireReceive(t, disconnects, "waiting for disconnect")
	if d[0] != 4000 || d[1] != "bye" {
		t.Errorf("disconnect = %v", d)
	}
	if s := c.State(); s != gateway.StateDisconnected {
		t.Errorf("State = %v", s)
	}
	if n := fake.PendingCount(); n != 0 {
		t.Errorf("PendingCount = %d after close, want 0", n)
	}
	testutil.RequireNoReceive(t, messages, 50*time.Millisecond, "message after close")
	testutil.RequireNoReceive(t, ready, 50*time.Millisecond, "second ready")
}

func TestDispatchEveryTableEntry(t *testing.T) {
	for _, m := range events.Table {
		t.Run(m.Tag, func(t *testing.T) {
			c := New(Options{Logger: discardLogger()})
			var calls int
			var got []any
			c.On(m.Event, func(args ...any) {
				calls++
				got = args
			})

			c.dispatch(gateway.Frame{Tag: m.Tag, Data: structs.Payload{}})

			if calls != 1 {
				t.Fatalf("%s delivered %d times, want 1", m.Event, calls)
			}
			if len(got) != len(m.Fields) {
				t.Fatalf("got %d args, want %d", len(got), len(m.Fields))
			}
			for i, f := range m.Fields {
				if !reflect.DeepEqual(got[i], f.Zero()) {
					t.Errorf("arg %d (%s) = %#v, want zero value", i, f.Key, got[i])
				}
			}
		})
	}
}

func TestUnknownTagIsIgnored(t *testing.T) {
	c := New(Options{Logger: discardLogger()})
	calls := 0
	for _, m := range events.Table {
		c.On(m.Event, func(args ...any) { calls++ })
	}
	c.On(events.Error, func(args ...any) { calls++ })

	c.dispatch(gateway.Frame{Tag: "NOT_A_TAG", Data: structs.Payload{"x": 1}})
	if calls != 0 {
		t.Errorf("unknown tag invoked %d handlers", calls)
	}
}

func TestBadFieldDropsFrame(t *testing.T) {
	c := New(Options{Logger: discardLogger()})
	calls := 0
	c.OnMessageCreate(func(structs.Message) { calls++ })

	c.dispatch(gateway.Frame{Tag: "MESSAGE_SEND", Data: structs.Payload{"message": "text"}})
	if calls != 0 {
		t.Errorf("handler called %d times for a malformed message", calls)
	}
}

func TestReadySnapshot(t *testing.T) {
	c := New(Options{Logger: discardLogger()})
	if c.User() != nil {
		t.Fatal("User() before ready should be nil")
	}
	var seen string
	c.OnReady(func(structs.User) {
		if u := c.User(); u != nil {
			seen = u.ID
		}
	})

	c.dispatch(gateway.Frame{Tag: "READY", Data: structs.Payload{"user": map[string]any{"id": "first"}}})
	if seen != "first" {
		t.Errorf("snapshot during ready = %q", seen)
	}
	c.dispatch(gateway.Frame{Tag: "READY", Data: structs.Payload{"user": map[string]any{"id": "second"}}})
	if c.User().ID != "second" {
		t.Errorf("User() = %q after second ready", c.User().ID)
	}
}

func TestTypedHelpers(t *testing.T) {
	c := New(Options{Logger: discardLogger()})

	var move []string
	c.OnVoiceChannelMove(func(userID, from, to, teamID, token string) {
		move = []string{userID, from, to, teamID, token}
	})
	var streaming, muted bool
	c.OnUserUpdatedVoiceMetadata(func(user structs.User, channelID string, isStreaming, isMuted, isDeafened bool) {
		streaming, muted = isStreaming, isMuted
	})
	var order []string
	c.OnCategoriesPriorityUpdate(func(o []string) { order = o })

	c.dispatch(gateway.Frame{Tag: "VOICE_CHANNEL_MOVE", Data: structs.Payload{
		"userId": "u", "fromChannelId": "a", "toChannelId": "b", "teamId": "t", "token": "k",
	}})
	c.dispatch(gateway.Frame{Tag: "USER_UPDATED_VOICE_METADATA", Data: structs.Payload{
		"isStreaming": true,
	}})
	c.dispatch(gateway.Frame{Tag: "CATEGORIES_PRIORITY_UPDATED", Data: structs.Payload{
		"order": []any{"x", "y"},
	}})

	if !reflect.DeepEqual(move, []string{"u", "a", "b", "t", "k"}) {
		t.Errorf("voiceChannelMove args = %v", move)
	}
	if !streaming || muted {
		t.Errorf("streaming = %v, muted = %v", streaming, muted)
	}
	if !reflect.DeepEqual(order, []string{"x", "y"}) {
		t.Errorf("order = %v", order)
	}
}

func TestLifecycleEvents(t *testing.T) {
	c := New(Options{Logger: discardLogger()})
	var code int
	var gotErr error
	c.OnDisconnect(func(n int, reason string) { code = n })
	c.OnError(func(err error) { gotErr = err })

	h := gatewayHandler{c}
	h.GatewayClose(1000, "")
	h.GatewayError(gateway.ErrReconnectFailed)

	if code != 1000 {
		t.Errorf("disconnect code = %d", code)
	}
	if gotErr != gateway.ErrReconnectFailed {
		t.Errorf("error = %v", gotErr)
	}
}

func TestRESTMethodsArePromoted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" || r.Header.Get("Authorization") != "Bot tok" {
			http.Error(w, "unexpected", http.StatusBadRequest)
			return
		}
		io.WriteString(w, `{"user":{"id":"b1","username":"bot"}}`)
	}))
	defer srv.Close()

	c := New(Options{Token: "tok", APIBaseURL: srv.URL, Strict: true, Logger: discardLogger()})
	u, err := c.GetCurrentUser(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if u == nil || u.Username != "bot" {
		t.Errorf("user = %+v", u)
	}
}
