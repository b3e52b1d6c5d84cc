package cli

import (
	"context"
)

func (a *App) ActivityList(ctx context.Context, limit int) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	entries, err := a.API.ListActivity(ctx, limit)
	if err != nil {
		return err
	}

	rows := [][]string{}
	for _, e := range entries {
		rows = append(rows, []string{formatTime(e.CreatedAt), dash(e.Username), e.Action, e.Resource, dash(e.Detail)})
	}
	a.table([]string{"WHEN", "USER", "ACTION", "RESOURCE", "DETAIL"}, rows)
	return nil
}
