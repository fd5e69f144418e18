package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

func (a *API) GetUser(ctx context.Context, userID string) (*structs.User, error) {
	return call[*structs.User](ctx, a, http.MethodGet, fmt.Sprintf("/users/%s", userID), nil, "user")
}

func (a *API) GetCurrentUser(ctx context.Context) (*structs.User, error) {
	return call[*structs.User](ctx, a, http.MethodGet, "/me", nil, "user")
}

// SetCustomStatus sets the bot's status line. Nil values clear a part.
func (a *API) SetCustomStatus(ctx context.Context, content, emojiID *string) (structs.Payload, error) {
	body := struct {
		Content *string `json:"content"`
		EmojiID *string `json:"emojiId"`
	}{content, emojiID}
	return callPayload(ctx, a, http.MethodPost, "/me/status", body)
}

func (a *API) DeleteCustomStatus(ctx context.Context) error {
	return callNoContent(ctx, a, http.MethodDelete, "/me/status", nil)
}

func (a *API) CreateDM(ctx context.Context, userID string) (*structs.DirectMessage, error) {
	type dmUser struct {
		ID string `json:"id"`
	}
	body := struct {
		Users []dmUser `json:"users"`
	}{[]dmUser{{ID: userID}}}
	return call[*structs.DirectMessage](ctx, a, http.MethodPost, "/me/chats", body, "DM")
}

func (a *API) GetDMs(ctx context.Context) ([]structs.DirectMessage, error) {
	return call[[]structs.DirectMessage](ctx, a, http.MethodGet, "/me/chats", nil, "DMs")
}
