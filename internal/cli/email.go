package cli

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/api"
)

func (a *App) EmailList(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Email.FetchAll(ctx); err != nil {
		return err
	}

	rows := [][]string{}
	for _, e := range a.Stores.Email.Items() {
		quota := "unlimited"
		if e.QuotaBytes > 0 {
			quota = fmt.Sprintf("%s / %s", formatBytes(e.UsedBytes), formatBytes(e.QuotaBytes))
		}
		rows = append(rows, []string{e.ID, e.Address, quota})
	}
	a.table([]string{"ID", "ADDRESS", "QUOTA"}, rows)
	return nil
}

func (a *App) EmailCreate(ctx context.Context, address, password string, quotaBytes int64) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	e, err := a.Stores.Email.Create(ctx, api.CreateEmailAccount{
		Address:    address,
		Password:   password,
		QuotaBytes: quotaBytes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Created mailbox %s (%s)\n", e.Address, e.ID)
	return nil
}

func (a *App) EmailDelete(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Email.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Deleted mailbox %s\n", id)
	return nil
}
