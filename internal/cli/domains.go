package cli

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/api"
)

func (a *App) DomainsList(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Domains.FetchAll(ctx); err != nil {
		return err
	}

	rows := [][]string{}
	for _, d := range a.Stores.Domains.Items() {
		ssl := "no"
		if d.SSLEnabled {
			ssl = "yes"
			if d.SSLExpiry != nil {
				ssl = "until " + formatTime(*d.SSLExpiry)
			}
		}
		rows = append(rows, []string{d.ID, d.Name, dash(d.Target), ssl, d.Status})
	}
	a.table([]string{"ID", "NAME", "TARGET", "SSL", "STATUS"}, rows)
	return nil
}

func (a *App) DomainsCreate(ctx context.Context, name, target, projectID string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	d, err := a.Stores.Domains.Create(ctx, api.CreateDomain{
		Name:      name,
		Target:    target,
		ProjectID: projectID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Created domain %s (%s)\n", d.Name, d.ID)
	return nil
}

func (a *App) DomainsDelete(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Domains.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Deleted domain %s\n", id)
	return nil
}

func (a *App) DomainsEnableSSL(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Domains.EnableSSL(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "SSL requested for %s\n", id)
	return nil
}
