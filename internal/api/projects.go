package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/model"
)

type CreateProject struct {
	Name        string `json:"name" validate:"required,slug"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Domain      string `json:"domain" validate:"omitempty,fqdn"`
}

type UpdateProject struct {
	Name        *string `json:"name" validate:"omitempty,slug"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Domain      *string `json:"domain" validate:"omitempty,fqdn"`
}

type AddProjectMember struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=owner editor viewer"`
}

// ListProjects returns all projects visible to the current user.
func (a *API) ListProjects(ctx context.Context) ([]model.Project, error) {
	items, err := getData[[]model.Project](ctx, a.c, "/projects")
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// GetProject returns a single project.
func (a *API) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return getData[model.Project](ctx, a.c, fmt.Sprintf("/projects/%s", id))
}

// CreateProject creates a project.
func (a *API) CreateProject(ctx context.Context, input CreateProject) (*model.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return postData[model.Project](ctx, a.c, "/projects", input)
}

// UpdateProject updates a project.
func (a *API) UpdateProject(ctx context.Context, id string, input UpdateProject) (*model.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return putData[model.Project](ctx, a.c, fmt.Sprintf("/projects/%s", id), input)
}

// DeleteProject deletes a project.
func (a *API) DeleteProject(ctx context.Context, id string) error {
	return deleteOnly(ctx, a.c, fmt.Sprintf("/projects/%s", id))
}

// ListProjectMembers returns the members of a project.
func (a *API) ListProjectMembers(ctx context.Context, projectID string) ([]model.ProjectMember, error) {
	items, err := getData[[]model.ProjectMember](ctx, a.c, fmt.Sprintf("/projects/%s/members", projectID))
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// AddProjectMember adds a user to a project.
func (a *API) AddProjectMember(ctx context.Context, projectID string, input AddProjectMember) (*model.ProjectMember, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return postData[model.ProjectMember](ctx, a.c, fmt.Sprintf("/projects/%s/members", projectID), input)
}

// RemoveProjectMember removes a user from a project.
func (a *API) RemoveProjectMember(ctx context.Context, projectID, userID string) error {
	return deleteOnly(ctx, a.c, fmt.Sprintf("/projects/%s/members/%s", projectID, userID))
}
