package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/rest"
	"github.com/DeadLyBro/teamly/src/structs"
)

func (a *API) ListCustomReactions(ctx context.Context, teamID string) ([]structs.Emoji, error) {
	return call[[]structs.Emoji](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/reactions", teamID), nil, "reactions")
}

// CreateCustomReaction uploads a team emoji. fields are merged into the
// payload_json part next to the name.
func (a *API) CreateCustomReaction(ctx context.Context, teamID, name string, fields map[string]any) (*structs.Emoji, error) {
	payload := map[string]any{}
	if name != "" {
		payload["name"] = name
	}
	for k, v := range fields {
		payload[k] = v
	}
	body := rest.Multipart{PayloadJSON: payload}
	return call[*structs.Emoji](ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/reactions", teamID), body, "emoji")
}

func (a *API) UpdateCustomReaction(ctx context.Context, teamID, reactionID, name string) (structs.Payload, error) {
	body := struct {
		Name string `json:"name"`
	}{name}
	return callPayload(ctx, a, http.MethodPut, fmt.Sprintf("/teams/%s/reactions/%s", teamID, reactionID), body)
}

func (a *API) DeleteCustomReaction(ctx context.Context, teamID, reactionID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/reactions/%s", teamID, reactionID), nil)
}

// UploadAttachment uploads a file and returns its URL. The part is always
// sent under the "file" field.
func (a *API) UploadAttachment(ctx context.Context, file rest.File, attachmentType string) (string, error) {
	file.Field = "file"
	body := rest.Multipart{
		Files: []rest.File{file},
		PayloadJSON: struct {
			Type string `json:"type"`
		}{attachmentType},
	}
	return call[string](ctx, a, http.MethodPost, "/upload", body, "url")
}
