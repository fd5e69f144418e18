package structs

type ChannelType = string

const (
	ChannelTypeText         ChannelType = "text"
	ChannelTypeVoice        ChannelType = "voice"
	ChannelTypeTodo         ChannelType = "todo"
	ChannelTypeWatchStream  ChannelType = "watchstream"
	ChannelTypeAnnouncement ChannelType = "announcement"
)

type Channel struct {
	ID               string                 `json:"id"`
	Type             ChannelType            `json:"type"`
	TeamID           string                 `json:"teamId"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	CreatedBy        string                 `json:"createdBy"`
	ParentID         string                 `json:"parentId,omitempty"`
	Participants     []string               `json:"participants,omitempty"`
	Priority         int                    `json:"priority"`
	RateLimitPerUser int                    `json:"rateLimitPerUser"`
	CreatedAt        string                 `json:"createdAt"`
	Permissions      Permissions            `json:"permissions"`
	AdditionalData   *ChannelAdditionalData `json:"additionalData,omitempty"`
	StreamChannel    string                 `json:"streamChannel,omitempty"`
	StreamPlatform   string                 `json:"streamPlatform,omitempty"`
}

// Stream settings of a watchstream channel.
type ChannelAdditionalData struct {
	StreamChannel  *string `json:"streamChannel"`
	StreamPlatform *string `json:"streamPlatform"`
}

// Role overwrites keyed by role id. Shared by channels and categories.
type Permissions struct {
	Role map[string]PermissionOverwrite `json:"role"`
}

type PermissionOverwrite struct {
	Allow int64 `json:"allow"`
	Deny  int64 `json:"deny"`
}

type Category struct {
	ID          string      `json:"id"`
	TeamID      string      `json:"teamId"`
	Name        string      `json:"name"`
	CreatedBy   string      `json:"createdBy"`
	Priority    int         `json:"priority,omitempty"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   string      `json:"createdAt"`
	EditedAt    string      `json:"editedAt,omitempty"`
}

// Channel position used when reordering a team's channels.
type ChannelPriority struct {
	ID       string `json:"id"`
	Priority int    `json:"priority"`
}
