package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

type channelBody struct {
	Name           string                         `json:"name"`
	Type           structs.ChannelType            `json:"type,omitempty"`
	AdditionalData *structs.ChannelAdditionalData `json:"additionalData"`
}

func (a *API) UpdateChannel(ctx context.Context, teamID, channelID, name string, additionalData *structs.ChannelAdditionalData) (structs.Payload, error) {
	path := fmt.Sprintf("/teams/%s/channels/%s", teamID, channelID)
	return callPayload(ctx, a, http.MethodPatch, path, channelBody{Name: name, AdditionalData: additionalData})
}

func (a *API) UpdateChannelRolePermissions(ctx context.Context, teamID, channelID, roleID string, allow, deny int64) (structs.Payload, error) {
	path := fmt.Sprintf("/teams/%s/channels/%s/permissions/role/%s", teamID, channelID, roleID)
	return callPayload(ctx, a, http.MethodPost, path, structs.PermissionOverwrite{Allow: allow, Deny: deny})
}

func (a *API) GetChannels(ctx context.Context, teamID string) ([]structs.Channel, error) {
	return call[[]structs.Channel](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/channels", teamID), nil, "channels")
}

// CreateChannel creates a channel. An empty channelType means a text
// channel.
func (a *API) CreateChannel(ctx context.Context, teamID, name string, channelType structs.ChannelType, additionalData *structs.ChannelAdditionalData) (*structs.Channel, error) {
	if channelType == "" {
		channelType = structs.ChannelTypeText
	}
	body := channelBody{Name: name, Type: channelType, AdditionalData: additionalData}
	return call[*structs.Channel](ctx, a, http.MethodPut, fmt.Sprintf("/teams/%s/channels", teamID), body, "channel")
}

func (a *API) DeleteChannel(ctx context.Context, teamID, channelID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/channels/%s", teamID, channelID), nil)
}

func (a *API) DuplicateChannel(ctx context.Context, teamID, channelID string) (*structs.Channel, error) {
	return call[*structs.Channel](ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/channels/%s/clone", teamID, channelID), nil, "channel")
}

func (a *API) UpdateChannelPriority(ctx context.Context, teamID string, channels []structs.ChannelPriority) (*structs.Channel, error) {
	return call[*structs.Channel](ctx, a, http.MethodPut, fmt.Sprintf("/teams/%s/channelspriority", teamID), channels, "channel")
}

func (a *API) GetChannel(ctx context.Context, teamID, channelID string) (*structs.Channel, error) {
	return call[*structs.Channel](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/channels/%s", teamID, channelID), nil, "channel")
}
