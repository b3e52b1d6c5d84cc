package api

import (
	"context"

	"github.com/edvin/panelctl/internal/model"
)

// AnalyzeCleanup runs the disk analysis and returns reclaimable categories.
func (a *API) AnalyzeCleanup(ctx context.Context) (*model.CleanupAnalysis, error) {
	return getData[model.CleanupAnalysis](ctx, a.c, "/cleanup/analyze")
}

// RunCleanup asks the backend to start a cleanup job. Like backups, the
// trigger response is inconclusive; progress is observed via CleanupStatus.
func (a *API) RunCleanup(ctx context.Context, categories []string) (*model.CleanupJob, error) {
	body := map[string][]string{"categories": categories}
	return postData[model.CleanupJob](ctx, a.c, "/cleanup/run", body)
}

// CleanupStatus returns the most recent cleanup job, if any.
func (a *API) CleanupStatus(ctx context.Context) (*model.CleanupJob, error) {
	return getData[model.CleanupJob](ctx, a.c, "/cleanup/status")
}
