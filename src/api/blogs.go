package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

func (a *API) GetBlogPosts(ctx context.Context, teamID string) ([]structs.Blog, error) {
	return call[[]structs.Blog](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/blogs", teamID), nil, "blogs")
}

func (a *API) CreateBlogPost(ctx context.Context, teamID, title, content string, heroImage *string) (*structs.Blog, error) {
	body := struct {
		Title     string  `json:"title"`
		Content   string  `json:"content"`
		HeroImage *string `json:"heroImage"`
	}{title, content, heroImage}
	return call[*structs.Blog](ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/blogs", teamID), body, "blog")
}

func (a *API) DeleteBlogPost(ctx context.Context, teamID, blogID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/blogs/%s", teamID, blogID), nil)
}
