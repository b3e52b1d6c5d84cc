package cli

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/api"
)

func (a *App) UsersList(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Users.FetchAll(ctx); err != nil {
		return err
	}

	rows := [][]string{}
	for _, u := range a.Stores.Users.Items() {
		active := "no"
		if u.Active {
			active = "yes"
		}
		last := "-"
		if u.LastLogin != nil {
			last = formatTime(*u.LastLogin)
		}
		rows = append(rows, []string{u.ID, u.Username, u.Email, u.Role, active, last})
	}
	a.table([]string{"ID", "USERNAME", "EMAIL", "ROLE", "ACTIVE", "LAST LOGIN"}, rows)
	return nil
}

func (a *App) UsersCreate(ctx context.Context, username, email, password, role string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	u, err := a.Stores.Users.Create(ctx, api.CreateUser{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Created user %s (%s)\n", u.Username, u.ID)
	return nil
}

func (a *App) UsersDelete(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Users.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Deleted user %s\n", id)
	return nil
}

func (a *App) UsersToggle(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Users.FetchAll(ctx); err != nil {
		return err
	}
	if err := a.Stores.Users.ToggleActive(ctx, id); err != nil {
		return err
	}
	for _, u := range a.Stores.Users.Items() {
		if u.ID == id {
			fmt.Fprintf(a.Out, "User %s active=%t\n", u.Username, u.Active)
		}
	}
	return nil
}

func (a *App) UsersPassword(ctx context.Context, id, password string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	err := a.Stores.Users.ChangePassword(ctx, id, api.ChangeUserPassword{Password: password})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Password changed for %s\n", id)
	return nil
}
