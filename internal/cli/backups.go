package cli

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/jobs"
	"github.com/edvin/panelctl/internal/model"
)

// Success messages mirror the panel UI wording.
const (
	systemBackupSuccess   = "Backup sistema creato con successo!"
	disasterBackupSuccess = "Backup disaster recovery creato con successo!"
	databaseBackupSuccess = "Backup database creato con successo!"
)

func (a *App) BackupsList(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	list, err := a.API.ListBackupJobs(ctx)
	if err != nil {
		return err
	}

	rows := [][]string{}
	for _, j := range list {
		rows = append(rows, []string{j.ID, j.Type, j.Status, formatBytes(j.SizeBytes), formatTime(j.CreatedAt)})
	}
	a.table([]string{"ID", "TYPE", "STATUS", "SIZE", "CREATED"}, rows)
	return nil
}

// BackupsCreate triggers a backup. Without -wait it fires the request and
// returns; with -wait it polls the job list until the matching entry
// reaches a terminal status, even if the trigger request itself aborts.
func (a *App) BackupsCreate(ctx context.Context, kind string, wait bool) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}

	var (
		create  func(context.Context) (*model.BackupJob, error)
		success string
	)
	switch kind {
	case "system":
		create, success = a.API.CreateSystemBackup, systemBackupSuccess
	case "disaster":
		create, success = a.API.CreateDisasterBackup, disasterBackupSuccess
	case "databases":
		create, success = a.API.CreateDatabaseBackup, databaseBackupSuccess
	default:
		return fmt.Errorf("unknown backup type %q (system, disaster, databases)", kind)
	}

	if !wait {
		job, err := create(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Backup job %s queued (%s)\n", job.ID, job.Status)
		return nil
	}

	tracker := jobs.NewTracker(jobs.Config{
		Category:       "backup-" + kind,
		SuccessMessage: success,
		PollInterval:   a.Config.PollInterval,
		TriggerTimeout: a.Config.TriggerTimeout,
		Logger:         a.Log,
		OnUpdate: func(u jobs.Update) {
			status := "waiting for job entry"
			if u.Entry != nil {
				status = u.Entry.(model.BackupJob).Status
			}
			fmt.Fprintf(a.Out, "[%s] %s\n", jobs.FormatElapsed(u.Elapsed), status)
		},
	})

	trigger := func(ctx context.Context) (string, error) {
		job, err := create(ctx)
		if err != nil {
			return "", err
		}
		return job.ID, nil
	}
	fetch := func(ctx context.Context) ([]jobs.Entry, error) {
		list, err := a.API.ListBackupJobs(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]jobs.Entry, len(list))
		for i, j := range list {
			entries[i] = j
		}
		return entries, nil
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
		return fmt.Errorf("backup failed after %s: %s", jobs.FormatElapsed(res.Elapsed), res.Message)
	}
	fmt.Fprintf(a.Out, "%s (%s)\n", res.Message, jobs.FormatElapsed(res.Elapsed))
	return nil
}

func (a *App) BackupsDelete(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.API.DeleteBackupJob(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Deleted backup %s\n", id)
	return nil
}

// BackupsDownload prints a direct download link built from a short-lived
// single-use token, so the session cookie never appears in a URL.
func (a *App) BackupsDownload(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	token, err := a.API.CreateBackupDownloadToken(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, a.API.BackupDownloadURL(id, token))
	return nil
}
