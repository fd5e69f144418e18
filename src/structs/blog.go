package structs

type Blog struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
	EditedAt  string `json:"editedAt,omitempty"`
	TeamID    string `json:"teamId"`
	HeroImage string `json:"heroImage,omitempty"`
}

type Announcement struct {
	ID          string                 `json:"id"`
	ChannelID   string                 `json:"channelId"`
	Title       string                 `json:"title"`
	Content     string                 `json:"content"`
	CreatedBy   User                   `json:"createdBy"`
	Attachments []Attachment           `json:"attachments,omitempty"`
	Emojis      []AnnouncementEmoji    `json:"emojis,omitempty"`
	Mentions    MessageMentions        `json:"mentions,omitempty"`
	Reactions   []AnnouncementReaction `json:"reactions,omitempty"`
	CreatedAt   string                 `json:"createdAt"`
	EditedAt    string                 `json:"editedAt,omitempty"`
}

type AnnouncementEmoji struct {
	EmojiID string `json:"emojiId,omitempty"`
}

type AnnouncementReaction struct {
	EmojiID string                     `json:"emojiId,omitempty"`
	Count   int                        `json:"count,omitempty"`
	Users   []AnnouncementReactionUser `json:"users,omitempty"`
}

type AnnouncementReactionUser struct {
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}
