package cli

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/api"
)

func (a *App) DatabasesList(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Databases.FetchAll(ctx); err != nil {
		return err
	}

	rows := [][]string{}
	for _, d := range a.Stores.Databases.Items() {
		rows = append(rows, []string{d.ID, d.Name, d.Engine, d.Status, formatBytes(d.SizeBytes)})
	}
	a.table([]string{"ID", "NAME", "ENGINE", "STATUS", "SIZE"}, rows)
	return nil
}

func (a *App) DatabasesCreate(ctx context.Context, name, engine, projectID string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	d, err := a.Stores.Databases.Create(ctx, api.CreateDatabase{
		Name:      name,
		Engine:    engine,
		ProjectID: projectID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Created %s database %s (%s) on %s:%d\n", d.Engine, d.Name, d.ID, d.Host, d.Port)
	return nil
}

func (a *App) DatabasesDelete(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Databases.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Deleted database %s\n", id)
	return nil
}

func (a *App) DatabasesPassword(ctx context.Context, id, password string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	err := a.Stores.Databases.ChangePassword(ctx, id, api.ChangeDatabasePassword{Password: password})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Password rotated for %s\n", id)
	return nil
}
