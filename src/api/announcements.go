package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

func (a *API) GetAnnouncements(ctx context.Context, channelID string) ([]structs.Announcement, error) {
	return call[[]structs.Announcement](ctx, a, http.MethodGet, fmt.Sprintf("/channels/%s/announcements", channelID), nil, "announcements")
}

func (a *API) CreateAnnouncement(ctx context.Context, channelID, title, content string, tagEveryone bool) (*structs.Announcement, error) {
	body := struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		TagEveryone bool   `json:"tagEveryone"`
	}{title, content, tagEveryone}
	return call[*structs.Announcement](ctx, a, http.MethodPost, fmt.Sprintf("/channels/%s/announcements", channelID), body, "announcement")
}

func (a *API) DeleteAnnouncement(ctx context.Context, teamID, announcementID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/announcements/%s", teamID, announcementID), nil)
}
