package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

type VoiceSettings struct {
	IsMuted    bool `json:"isMuted"`
	IsDeafened bool `json:"isDeafened"`
}

// JoinVoiceChannel joins a voice channel and returns the voice token.
func (a *API) JoinVoiceChannel(ctx context.Context, teamID, channelID string, isMuted, isDeafened bool) (string, error) {
	path := fmt.Sprintf("/teams/%s/channels/%s/join?isMuted=%t&isDeafened=%t", teamID, channelID, isMuted, isDeafened)
	return call[string](ctx, a, http.MethodGet, path, nil, "token")
}

func (a *API) UpdateVoiceSettings(ctx context.Context, teamID, channelID string, settings VoiceSettings) (*VoiceSettings, error) {
	return call[*VoiceSettings](ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/channels/%s/metadata", teamID, channelID), settings, "data")
}

func (a *API) LeaveVoiceChannel(ctx context.Context, teamID, channelID string) (structs.Payload, error) {
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/channels/%s/leave", teamID, channelID), nil)
}

// MoveMember moves userID from one voice channel to another.
func (a *API) MoveMember(ctx context.Context, teamID, fromChannelID, userID, toChannelID string) (structs.Payload, error) {
	body := struct {
		UserID        string `json:"userId"`
		FromChannelID string `json:"fromChannelId"`
	}{userID, fromChannelID}
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/channels/%s/move", teamID, toChannelID), body)
}

func (a *API) KickMemberFromVoiceChannel(ctx context.Context, teamID, channelID, userID string) (structs.Payload, error) {
	path := fmt.Sprintf("/teams/%s/channels/%s/participants/%s/disconnect", teamID, channelID, userID)
	return callPayload(ctx, a, http.MethodPost, path, nil)
}
