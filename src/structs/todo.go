package structs

type Todo struct {
	ID          string `json:"id"`
	ChannelID   string `json:"channelId"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	CreatedBy   string `json:"createdBy"`
	EditedBy    string `json:"editedBy,omitempty"`
	EditedAt    string `json:"editedAt,omitempty"`
	Completed   bool   `json:"completed"`
	CompletedBy string `json:"completedBy,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
