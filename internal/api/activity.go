package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/model"
)

// ListActivity returns the most recent activity entries.
func (a *API) ListActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	path := "/activity"
	if limit > 0 {
		path = fmt.Sprintf("/activity?limit=%d", limit)
	}
	items, err := getData[[]model.ActivityEntry](ctx, a.c, path)
	if err != nil {
		return nil, err
	}
	return *items, nil
}
