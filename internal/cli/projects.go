package cli

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/api"
)

func (a *App) ProjectsList(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Projects.FetchAll(ctx); err != nil {
		return err
	}

	rows := [][]string{}
	for _, p := range a.Stores.Projects.Items() {
		rows = append(rows, []string{p.ID, p.Name, dash(p.Domain), p.Status, formatTime(p.CreatedAt)})
	}
	a.table([]string{"ID", "NAME", "DOMAIN", "STATUS", "CREATED"}, rows)
	return nil
}

func (a *App) ProjectsCreate(ctx context.Context, name, description, domain string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	p, err := a.Stores.Projects.Create(ctx, api.CreateProject{
		Name:        name,
		Description: description,
		Domain:      domain,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Created project %s (%s)\n", p.Name, p.ID)
	return nil
}

func (a *App) ProjectsDelete(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Projects.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Deleted project %s\n", id)
	return nil
}

func (a *App) MembersList(ctx context.Context, projectID string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	m := a.Stores.Members(projectID)
	if err := m.FetchAll(ctx); err != nil {
		return err
	}

	rows := [][]string{}
	for _, e := range m.Items() {
		rows = append(rows, []string{e.UserID, e.Username, e.Role, formatTime(e.AddedAt)})
	}
	a.table([]string{"USER", "USERNAME", "ROLE", "ADDED"}, rows)
	return nil
}

func (a *App) MembersAdd(ctx context.Context, projectID, userID, role string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	m := a.Stores.Members(projectID)
	if err := m.FetchAll(ctx); err != nil {
		return err
	}
	if err := m.Add(ctx, api.AddProjectMember{UserID: userID, Role: role}); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Added %s to %s as %s\n", userID, projectID, role)
	return nil
}

func (a *App) MembersRemove(ctx context.Context, projectID, userID string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	m := a.Stores.Members(projectID)
	if err := m.FetchAll(ctx); err != nil {
		return err
	}
	if err := m.Remove(ctx, userID); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Removed %s from %s\n", userID, projectID)
	return nil
}
