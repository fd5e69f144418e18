package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

type categoryBody struct {
	Name string `json:"name"`
}

func (a *API) CreateCategory(ctx context.Context, teamID, name string) (*structs.Category, error) {
	return call[*structs.Category](ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/categories", teamID), categoryBody{name}, "category")
}

func (a *API) UpdateCategory(ctx context.Context, teamID, categoryID, name string) (*structs.Category, error) {
	path := fmt.Sprintf("/teams/%s/categories/%s", teamID, categoryID)
	return call[*structs.Category](ctx, a, http.MethodPut, path, categoryBody{name}, "category")
}

// UpdateCategoryRolePermissions sets a role overwrite; a nil deny is sent
// as null.
func (a *API) UpdateCategoryRolePermissions(ctx context.Context, teamID, categoryID, roleID string, allow int64, deny *int64) (structs.Payload, error) {
	body := struct {
		Allow int64  `json:"allow"`
		Deny  *int64 `json:"deny"`
	}{allow, deny}
	path := fmt.Sprintf("/teams/%s/categories/%s/permissions/role/%s", teamID, categoryID, roleID)
	return callPayload(ctx, a, http.MethodPost, path, body)
}

func (a *API) DeleteCategory(ctx context.Context, teamID, categoryID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/categories/%s", teamID, categoryID), nil)
}

func (a *API) AddChannelToCategory(ctx context.Context, teamID, categoryID, channelID string) (*structs.Channel, error) {
	path := fmt.Sprintf("/teams/%s/categories/%s/channels/%s", teamID, categoryID, channelID)
	return call[*structs.Channel](ctx, a, http.MethodPost, path, nil, "channel")
}

func (a *API) RemoveChannelFromCategory(ctx context.Context, teamID, categoryID, channelID string) (*structs.Channel, error) {
	path := fmt.Sprintf("/teams/%s/categories/%s/channels/%s", teamID, categoryID, channelID)
	return call[*structs.Channel](ctx, a, http.MethodDelete, path, nil, "channel")
}

func (a *API) SetChannelPriorityOfCategory(ctx context.Context, teamID, categoryID string, channelIDs []string) (structs.Payload, error) {
	body := struct {
		Channels []string `json:"channels"`
	}{channelIDs}
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/categories/%s/channels-priority", teamID, categoryID), body)
}

func (a *API) SetCategoryPriorityOfTeam(ctx context.Context, teamID string, categoryIDs []string) (structs.Payload, error) {
	body := struct {
		Categories []string `json:"categories"`
	}{categoryIDs}
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/categories-priority", teamID), body)
}
