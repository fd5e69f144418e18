package structs

type Team struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	ProfilePicture     string     `json:"profilePicture,omitempty"`
	Banner             string     `json:"banner,omitempty"`
	Description        string     `json:"description,omitempty"`
	IsVerified         bool       `json:"isVerified"`
	IsSuspended        bool       `json:"isSuspended,omitempty"`
	CreatedBy          string     `json:"createdBy,omitempty"`
	DefaultChannelID   string     `json:"defaultChannelId,omitempty"`
	Games              []TeamGame `json:"games,omitempty"`
	IsDiscoverable     bool       `json:"isDiscoverable,omitempty"`
	DiscoverableInvite string     `json:"discoverableInvite,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	MemberCount        int        `json:"memberCount,omitempty"`
}

type TeamGame struct {
	ID        int      `json:"id"`
	Platforms []string `json:"platforms"`
	Region    string   `json:"region"`
}

type Role struct {
	ID                    string       `json:"id"`
	TeamID                string       `json:"teamId"`
	Name                  string       `json:"name"`
	IconURL               string       `json:"iconUrl,omitempty"`
	Color                 string       `json:"color"`
	Color2                string       `json:"color2,omitempty"`
	Permissions           int64        `json:"permissions"`
	Priority              int          `json:"priority"`
	CreatedAt             string       `json:"createdAt"`
	UpdatedAt             string       `json:"updatedAt,omitempty"`
	IsDisplayedSeparately bool         `json:"isDisplayedSeparately"`
	IsSelfAssignable      bool         `json:"isSelfAssignable,omitempty"`
	IconEmojiID           string       `json:"iconEmojiId,omitempty"`
	Mentionable           bool         `json:"mentionable"`
	BotScope              RoleBotScope `json:"botScope"`
}

// Set when the role is managed by a bot.
type RoleBotScope struct {
	UserID string `json:"userId,omitempty"`
}
