package cli

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/jobs"
	"github.com/edvin/panelctl/internal/model"
)

func (a *App) CleanupAnalyze(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	analysis, err := a.API.AnalyzeCleanup(ctx)
	if err != nil {
		return err
	}

	rows := [][]string{}
	for _, c := range analysis.Categories {
		reclaimable := ""
		if c.Reclaimable {
			reclaimable = "yes"
		}
		rows = append(rows, []string{c.Name, formatBytes(c.SizeBytes), reclaimable, dash(c.Description)})
	}
	a.table([]string{"CATEGORY", "SIZE", "RECLAIMABLE", "DESCRIPTION"}, rows)
	fmt.Fprintf(a.Out, "Disk usage: %.1f%%\n", analysis.DiskUsage)
	return nil
}

// CleanupRun starts a cleanup over the given categories. With -wait it
// polls the status endpoint, printing progress and the current step.
func (a *App) CleanupRun(ctx context.Context, categories []string, wait bool) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}

	if !wait {
		job, err := a.API.RunCleanup(ctx, categories)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Cleanup %s started (%s)\n", job.ID, job.Status)
		return nil
	}

	tracker := jobs.NewTracker(jobs.Config{
		Category:       "cleanup",
		SuccessMessage: "Pulizia completata con successo!",
		PollInterval:   a.Config.PollInterval,
		TriggerTimeout: a.Config.TriggerTimeout,
		Logger:         a.Log,
		OnUpdate: func(u jobs.Update) {
			if u.Entry == nil {
				fmt.Fprintf(a.Out, "[%s] starting\n", jobs.FormatElapsed(u.Elapsed))
				return
			}
			job := u.Entry.(model.CleanupJob)
			fmt.Fprintf(a.Out, "[%s] %3d%% %s\n", jobs.FormatElapsed(u.Elapsed), job.Progress, job.CurrentStep)
		},
	})

	trigger := func(ctx context.Context) (string, error) {
		job, err := a.API.RunCleanup(ctx, categories)
		if err != nil {
			return "", err
		}
		return job.ID, nil
	}
	fetch := func(ctx context.Context) ([]jobs.Entry, error) {
		job, err := a.API.CleanupStatus(ctx)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, nil
		}
		return []jobs.Entry{*job}, nil
	}

	session, err := tracker.Start(ctx, trigger, fetch)
	if err != nil {
		return err
	}

	res, err := session.Wait(ctx)
	if err != nil {
		session.Stop()
		return err
	}
	if !res.Success {
		return fmt.Errorf("cleanup failed: %s", res.Message)
	}

	fmt.Fprintln(a.Out, res.Message)
	if job, ok := res.Entry.(model.CleanupJob); ok && job.TotalFreed > 0 {
		fmt.Fprintf(a.Out, "Freed %s (disk %.1f%% -> %.1f%%)\n",
			formatBytes(job.TotalFreed), job.DiskUsageBefore, job.DiskUsageAfter)
	}
	return nil
}
