package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DeadLyBro/teamly/src/structs"
)

func (a *API) GetApplications(ctx context.Context, teamID string) ([]structs.Application, error) {
	return call[[]structs.Application](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/applications", teamID), nil, "applications")
}

// UpdateApplicationStatus approves or rejects an application.
func (a *API) UpdateApplicationStatus(ctx context.Context, teamID, applicationID string, status structs.ApplicationStatus) (structs.Payload, error) {
	body := struct {
		Status structs.ApplicationStatus `json:"status"`
	}{status}
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/applications/%s", teamID, applicationID), body)
}

// UpdateTeamApplicationStatus opens or closes applications for a team.
func (a *API) UpdateTeamApplicationStatus(ctx context.Context, teamID string, enabled bool) (structs.Payload, error) {
	body := struct {
		Enabled string `json:"enabled"`
	}{strconv.FormatBool(enabled)}
	return callPayload(ctx, a, http.MethodPost, fmt.Sprintf("/teams/%s/applications/status", teamID), body)
}

func (a *API) UpdateApplicationQuestions(ctx context.Context, teamID, description string, questions []structs.ApplicationQuestion) (*structs.Application, error) {
	if len(questions) == 0 {
		questions = []structs.ApplicationQuestion{{Question: "Example question", Type: "text"}}
	}
	body := struct {
		Description string                        `json:"description"`
		Questions   []structs.ApplicationQuestion `json:"questions"`
	}{description, questions}
	return call[*structs.Application](ctx, a, http.MethodPatch, fmt.Sprintf("/teams/%s/applications", teamID), body, "application")
}

func (a *API) GetApplication(ctx context.Context, teamID, applicationID string) (*structs.Application, error) {
	return call[*structs.Application](ctx, a, http.MethodGet, fmt.Sprintf("/teams/%s/applications/%s", teamID, applicationID), nil, "application")
}
