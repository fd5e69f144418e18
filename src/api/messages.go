package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DeadLyBro/teamly/src/structs"
)

const defaultMessageLimit = 50

type messageBody struct {
	Content string                 `json:"content,omitempty"`
	Embeds  []structs.MessageEmbed `json:"embeds,omitempty"`
	ReplyTo string                 `json:"replyTo,omitempty"`
}

func newMessageBody(content string, options *structs.MessageOptions) messageBody {
	body := messageBody{Content: content}
	if options != nil {
		body.Embeds = options.Embeds
		body.ReplyTo = options.ReplyTo
	}
	return body
}

// GetMessages lists messages in a channel. A non-positive limit means 50.
// params are added to the query string as given.
func (a *API) GetMessages(ctx context.Context, channelID string, limit int, params url.Values) ([]structs.Message, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("limit", strconv.Itoa(limit))
	path := fmt.Sprintf("/channels/%s/messages?%s", channelID, query.Encode())
	return call[[]structs.Message](ctx, a, http.MethodGet, path, nil, "messages")
}

func (a *API) SendMessage(ctx context.Context, channelID, content string, options *structs.MessageOptions) (*structs.Message, error) {
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	return call[*structs.Message](ctx, a, http.MethodPost, path, newMessageBody(content, options), "message")
}

// Reply sends content as a reply to repliedMessageID.
func (a *API) Reply(ctx context.Context, channelID, repliedMessageID, content string, options *structs.MessageOptions) (*structs.Message, error) {
	body := newMessageBody(content, options)
	body.ReplyTo = repliedMessageID
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	return call[*structs.Message](ctx, a, http.MethodPost, path, body, "message")
}

// EditMessage replaces a message. An empty content leaves the text as is,
// which is useful when only embeds change.
func (a *API) EditMessage(ctx context.Context, channelID, messageID, content string, options *structs.MessageOptions) (*structs.Message, error) {
	path := fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID)
	return call[*structs.Message](ctx, a, http.MethodPatch, path, newMessageBody(content, options), "message")
}

func (a *API) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID), nil)
}

func (a *API) GetMessage(ctx context.Context, channelID, messageID string) (*structs.Message, error) {
	return call[*structs.Message](ctx, a, http.MethodGet, fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID), nil, "message")
}

// SendEmbed posts embeds with optional content. With no embeds a
// placeholder embed is sent.
func (a *API) SendEmbed(ctx context.Context, channelID, content string, embeds []structs.MessageEmbed) (*structs.Message, error) {
	if len(embeds) == 0 {
		embeds = []structs.MessageEmbed{{Title: "Title", Description: "Description"}}
	}
	body := messageBody{Content: content, Embeds: embeds}
	return call[*structs.Message](ctx, a, http.MethodPost, fmt.Sprintf("/channels/%s/messages", channelID), body, "message")
}
