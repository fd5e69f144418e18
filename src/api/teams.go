package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

// TeamUpdate holds the team fields to change. Nil fields are sent as null.
type TeamUpdate struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	ProfilePicture *string `json:"profilePicture"`
	Banner         *string `json:"banner"`
}

func (a *API) AddRole(ctx context.Context, teamID, userID, roleID string) (structs.Payload, error) {
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/members/%s/roles/%s", teamID, userID, roleID), nil)
}

func (a *API) RemoveRole(ctx context.Context, teamID, userID, roleID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/members/%s/roles/%s", teamID, userID, roleID), nil)
}

func (a *API) KickMember(ctx context.Context, teamID, userID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/teams/%s/members/%s", teamID, userID), nil)
}

func (a *API) GetMember(ctx context.Context, teamID, userID string) (*structs.User, error) {
	return call[*structs.User](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/members/%s", teamID, userID), nil, "member")
}

func (a *API) ListMembers(ctx context.Context, teamID string) ([]structs.User, error) {
	return call[[]structs.User](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/members", teamID), nil, "members")
}

func (a *API) GetTeam(ctx context.Context, teamID string) (*structs.Team, error) {
	return call[*structs.Team](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/details", teamID), nil, "team")
}

func (a *API) UpdateTeam(ctx context.Context, teamID string, update TeamUpdate) (structs.Payload, error) {
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s", teamID), update)
}

func (a *API) ListTeams(ctx context.Context) ([]structs.Team, error) {
	return call[[]structs.Team](ctx, a, http.MethodGet, "/teams", nil, "teams")
}
