package structs

type Webhook struct {
	ID             string `json:"id"`
	ChannelID      string `json:"channelId"`
	TeamID         string `json:"teamId"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Token          string `json:"token"`
	CreatedBy      string `json:"createdBy"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// Body posted to a webhook endpoint.
type WebhookMessage struct {
	Username string         `json:"username"`
	Content  string         `json:"content"`
	Embeds   []MessageEmbed `json:"embeds"`
}
