package structs

// Presence values carried by User.Presence and presence updates.
type Presence = int

const (
	PresenceOffline Presence = 0
	PresenceOnline  Presence = 1
	PresenceIdle    Presence = 2
	PresenceDND     Presence = 3
)

type User struct {
	ID             string      `json:"id"`
	Username       string      `json:"username"`
	Subdomain      string      `json:"subdomain"`
	ProfilePicture string      `json:"profilePicture,omitempty"`
	Banner         string      `json:"banner,omitempty"`
	Bot            bool        `json:"bot"`
	System         bool        `json:"system"`
	Presence       Presence    `json:"presence"`
	Flags          string      `json:"flags"`
	Badges         []Badge     `json:"badges"`
	UserStatus     *UserStatus `json:"userStatus,omitempty"`
	UserRPC        *UserRPC    `json:"userRPC,omitempty"`
	Connections    []any       `json:"connections"` // unimplemented
	CreatedAt      string      `json:"createdAt"`
}

type Badge struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type UserStatus struct {
	Content string `json:"content,omitempty"`
	EmojiID string `json:"emojiId,omitempty"`
}

// Rich presence shown on a user's profile.
type UserRPC struct {
	Type      string `json:"type,omitempty"`
	Name      string `json:"name,omitempty"`
	ID        int64  `json:"id,omitempty"`
	StartedAt string `json:"startedAt,omitempty"`
}
