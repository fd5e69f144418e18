package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DeadLyBro/teamly/src/rest"
	"github.com/DeadLyBro/teamly/src/structs"
)

type recorded struct {
	method string
	path   string
	query  url.Values
	body   string
	header http.Header
}

// newTestAPI serves every request with status and body and records the
// last request.
func newTestAPI(t *testing.T, strict bool, status int, body string) (*API, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*rec = recorded{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			body:   string(b),
			header: r.Header.Clone(),
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(Config{
		REST:   rest.New(rest.Config{BaseURL: srv.URL, Token: "tok", Logger: logger}),
		Logger: logger,
		Strict: strict,
	})
	return a, rec
}

func TestFailureIsMaskedByDefault(t *testing.T) {
	a, _ := newTestAPI(t, false, http.StatusNotFound, `{"error":"missing"}`)
	ctx := context.Background()

	user, err := a.GetUser(ctx, "u1")
	if err != nil || user == nil || user.ID != "" {
		t.Errorf("GetUser = (%+v, %v), want (empty user, nil)", user, err)
	}
	channels, err := a.GetChannels(ctx, "t1")
	if err != nil || channels == nil || len(channels) != 0 {
		t.Errorf("GetChannels = (%#v, %v), want (empty slice, nil)", channels, err)
	}
	p, err := a.AddRole(ctx, "t1", "u1", "r1")
	if err != nil || p == nil || len(p) != 0 {
		t.Errorf("AddRole = (%#v, %v), want (empty payload, nil)", p, err)
	}
	if err := a.DeleteMessage(ctx, "c1", "m1"); err != nil {
		t.Errorf("DeleteMessage = %v, want nil", err)
	}
}

func TestTransportFailureIsMaskedByDefault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	a := New(Config{
		REST:   rest.New(rest.Config{BaseURL: srv.URL}),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	msg, err := a.SendMessage(context.Background(), "c1", "hi", nil)
	if err != nil || msg == nil {
		t.Fatalf("SendMessage = (%v, %v), want (empty message, nil)", msg, err)
	}
	if msg.ID != "" || msg.Content != "" {
		t.Errorf("message = %+v, want zero", msg)
	}
}

func TestMaskedResultsAreUsable(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusNoContent} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			a, _ := newTestAPI(t, false, status, "")
			ctx := context.Background()

			msg, err := a.SendMessage(ctx, "c1", "hi", nil)
			if err != nil {
				t.Fatal(err)
			}
			if msg.ID != "" {
				t.Errorf("message id = %q", msg.ID)
			}
			reply, err := a.Reply(ctx, "c1", "m1", "pong", nil)
			if err != nil {
				t.Fatal(err)
			}
			if reply.ChannelID != "" {
				t.Errorf("reply channel = %q", reply.ChannelID)
			}
			team, err := a.GetTeam(ctx, "t1")
			if err != nil {
				t.Fatal(err)
			}
			if team.Name != "" {
				t.Errorf("team name = %q", team.Name)
			}
		})
	}
}

func TestStrictReturnsAPIError(t *testing.T) {
	a, _ := newTestAPI(t, true, http.StatusForbidden, `no`)

	_, err := a.GetTeam(context.Background(), "t1")
	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *rest.APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Body != "no" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestNoContent(t *testing.T) {
	a, _ := newTestAPI(t, true, http.StatusNoContent, "")

	p, err := a.LeaveVoiceChannel(context.Background(), "t1", "c1")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || len(p) != 0 {
		t.Errorf("payload = %#v, want empty", p)
	}
}

func TestKeyedResult(t *testing.T) {
	a, rec := newTestAPI(t, true, http.StatusOK, `{"channel":{"id":"c1","name":"general","type":"text"}}`)

	ch, err := a.GetChannel(context.Background(), "t1", "c1")
	if err != nil {
		t.Fatal(err)
	}
	if ch == nil || ch.ID != "c1" || ch.Name != "general" {
		t.Errorf("channel = %+v", ch)
	}
	if rec.method != http.MethodGet || rec.path != "/teams/t1/channels/c1" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
	if rec.header.Get("Authorization") != "Bot tok" {
		t.Errorf("Authorization = %q", rec.header.Get("Authorization"))
	}
}

func TestMissingKeyIsEmpty(t *testing.T) {
	a, _ := newTestAPI(t, true, http.StatusOK, `{"other":1}`)

	ch, err := a.GetChannel(context.Background(), "t1", "c1")
	if err != nil || ch == nil || ch.ID != "" {
		t.Errorf("GetChannel = (%+v, %v), want (empty channel, nil)", ch, err)
	}

	a, _ = newTestAPI(t, true, http.StatusOK, `{"channel":null}`)
	ch, err = a.GetChannel(context.Background(), "t1", "c1")
	if err != nil || ch == nil {
		t.Errorf("GetChannel with null = (%v, %v), want (empty channel, nil)", ch, err)
	}
}

func TestGetMessagesQuery(t *testing.T) {
	a, rec := newTestAPI(t, true, http.StatusOK, `{"messages":[{"id":"m1"},{"id":"m2"}]}`)

	msgs, err := a.GetMessages(context.Background(), "c1", 0, url.Values{"before": {"m9"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 || msgs[1].ID != "m2" {
		t.Errorf("messages = %+v", msgs)
	}
	if rec.path != "/channels/c1/messages" || rec.query.Get("limit") != "50" || rec.query.Get("before") != "m9" {
		t.Errorf("request = %s ?%s", rec.path, rec.query.Encode())
	}
}

func TestMessageBodies(t *testing.T) {
	tests := []struct {
		name string
		call func(a *API) error
		want string
	}{
		{
			name: "send",
			call: func(a *API) error {
				_, err := a.SendMessage(context.Background(), "c1", "hello", nil)
				return err
			},
			want: `{"content":"hello"}`,
		},
		{
			name: "reply",
			call: func(a *API) error {
				_, err := a.Reply(context.Background(), "c1", "m1", "pong", nil)
				return err
			},
			want: `{"content":"pong","replyTo":"m1"}`,
		},
		{
			name: "edit embeds only",
			call: func(a *API) error {
				_, err := a.EditMessage(context.Background(), "c1", "m1", "", &structs.MessageOptions{
					Embeds: []structs.MessageEmbed{{Title: "t", Color: 255}},
				})
				return err
			},
			want: `{"embeds":[{"title":"t","color":255}]}`,
		},
		{
			name: "embed placeholder",
			call: func(a *API) error {
				_, err := a.SendEmbed(context.Background(), "c1", "", nil)
				return err
			},
			want: `{"embeds":[{"title":"Title","description":"Description"}]}`,
		},
		{
			name: "create channel defaults to text",
			call: func(a *API) error {
				_, err := a.CreateChannel(context.Background(), "t1", "general", "", nil)
				return err
			},
			want: `{"name":"general","type":"text","additionalData":null}`,
		},
		{
			name: "dm",
			call: func(a *API) error {
				_, err := a.CreateDM(context.Background(), "u1")
				return err
			},
			want: `{"users":[{"id":"u1"}]}`,
		},
		{
			name: "team application status",
			call: func(a *API) error {
				_, err := a.UpdateTeamApplicationStatus(context.Background(), "t1", true)
				return err
			},
			want: `{"enabled":"true"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, rec := newTestAPI(t, true, http.StatusOK, `{}`)
			if err := tt.call(a); err != nil {
				t.Fatal(err)
			}
			if rec.body != tt.want {
				t.Errorf("body = %s, want %s", rec.body, tt.want)
			}
			if ct := rec.header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestJoinVoiceChannel(t *testing.T) {
	a, rec := newTestAPI(t, true, http.StatusOK, `{"token":"vt"}`)

	token, err := a.JoinVoiceChannel(context.Background(), "t1", "c1", true, false)
	if err != nil {
		t.Fatal(err)
	}
	if token != "vt" {
		t.Errorf("token = %q", token)
	}
	if rec.query.Get("isMuted") != "true" || rec.query.Get("isDeafened") != "false" {
		t.Errorf("query = %v", rec.query)
	}
}

func TestUploadAttachment(t *testing.T) {
	a, rec := newTestAPI(t, true, http.StatusOK, `{"url":"https://cdn.test/a.png"}`)

	u, err := a.UploadAttachment(context.Background(), rest.File{Name: "a.png", Content: strings.NewReader("PNG")}, "image")
	if err != nil {
		t.Fatal(err)
	}
	if u != "https://cdn.test/a.png" {
		t.Errorf("url = %q", u)
	}
	if !strings.HasPrefix(rec.header.Get("Content-Type"), "multipart/form-data") {
		t.Errorf("Content-Type = %q", rec.header.Get("Content-Type"))
	}
	if !strings.Contains(rec.body, `name="file"; filename="a.png"`) || !strings.Contains(rec.body, `{"type":"image"}`) {
		t.Errorf("body = %s", rec.body)
	}
}
