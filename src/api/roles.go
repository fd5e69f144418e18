package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

// RoleData is the body of role create and update calls.
type RoleData struct {
	Name                  string  `json:"name"`
	Color                 string  `json:"color"`
	Permissions           *int64  `json:"permissions"`
	IsDisplayedSeparately bool    `json:"isDisplayedSeparately"`
	Color2                *string `json:"color2"`
}

func (a *API) CreateRole(ctx context.Context, teamID string, role RoleData) (*structs.Role, error) {
	return call[*structs.Role](ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/roles", teamID), role, "role")
}

func (a *API) GetRoles(ctx context.Context, teamID string) ([]structs.Role, error) {
	return call[[]structs.Role](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/roles", teamID), nil, "roles")
}

func (a *API) DeleteRole(ctx context.Context, teamID, roleID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/roles/%s", teamID, roleID), nil)
}

func (a *API) CloneRole(ctx context.Context, teamID, roleID string) (*structs.Role, error) {
	return call[*structs.Role](ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/roles/%s/clone", teamID, roleID), nil, "role")
}

// UpdateRolePriority reorders roles; roleIDs lists them highest first.
func (a *API) UpdateRolePriority(ctx context.Context, teamID string, roleIDs []string) ([]structs.Role, error) {
	return call[[]structs.Role](ctx, a, http.MethodPatch, fmt.Sprintf("/teams/%s/roles-priority", teamID), roleIDs, "roles")
}

func (a *API) UpdateRole(ctx context.Context, teamID, roleID string, role RoleData) (*structs.Role, error) {
	return call[*structs.Role](ctx, a, http.MethodPatch, fmt.Sprintf("/teams/%s/roles/%s", teamID, roleID), role, "role")
}
