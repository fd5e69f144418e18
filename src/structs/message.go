package structs

// Represent a message sent in a channel within Teamly.
type Message struct {
	ID          string          `json:"id"`
	ChannelID   string          `json:"channelId"`
	Type        string          `json:"type"`
	Content     string          `json:"content,omitempty"`
	Attachments []Attachment    `json:"attachments,omitempty"`
	URL         string          `json:"url"`
	EditedAt    string          `json:"editedAt,omitempty"`
	ReplyTo     string          `json:"replyTo,omitempty"`
	CreatedBy   User            `json:"createdBy"`
	Emojis      []Emoji         `json:"emojis,omitempty"`
	Reactions   []Reaction      `json:"reactions,omitempty"`
	Nonce       string          `json:"nonce,omitempty"`
	Mentions    MessageMentions `json:"mentions"`
	CreatedAt   string          `json:"createdAt"`
}

type MessageMentions struct {
	Users []string `json:"users,omitempty"`
}

type Attachment struct {
	URL string `json:"url"`
}

type Reaction struct {
	EmojiID string         `json:"emojiId"`
	Count   int            `json:"count"`
	Users   []ReactionUser `json:"users"`
}

type ReactionUser struct {
	ID        string `json:"id"`
	ReactedAt string `json:"reactedAt"`
}

type Emoji struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedBy string `json:"createdBy"`
	UpdatedBy string `json:"updatedBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`
}

type MessageEmbed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Color       int          `json:"color,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty"`
	Thumbnail   *EmbedImage  `json:"thumbnail,omitempty"`
	Image       *EmbedImage  `json:"image,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

type EmbedAuthor struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
}

type EmbedImage struct {
	URL string `json:"url"`
}

type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url"`
}

// Optional fields merged into a message body when sending or editing.
type MessageOptions struct {
	Embeds  []MessageEmbed `json:"embeds,omitempty"`
	ReplyTo string         `json:"replyTo,omitempty"`
}

type DirectMessage struct {
	ID          string   `json:"id"`
	Users       []string `json:"users"`
	ChannelID   string   `json:"channelId"`
	CreatedAt   string   `json:"createdAt"`
	LastMessage Message  `json:"lastMessage"`
}
