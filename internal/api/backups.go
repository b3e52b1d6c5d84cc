package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/edvin/panelctl/internal/model"
)

// ListBackupJobs returns the backup job history, newest first.
func (a *API) ListBackupJobs(ctx context.Context) ([]model.BackupJob, error) {
	items, err := getData[[]model.BackupJob](ctx, a.c, "/system-backup/jobs")
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// CreateSystemBackup asks the backend to start a system-template backup.
// The call may time out client-side long before the job finishes; the job
// outcome is observed by polling ListBackupJobs.
func (a *API) CreateSystemBackup(ctx context.Context) (*model.BackupJob, error) {
	return postData[model.BackupJob](ctx, a.c, "/system-backup/system", nil)
}

// CreateDisasterBackup starts a full disaster-recovery backup.
func (a *API) CreateDisasterBackup(ctx context.Context) (*model.BackupJob, error) {
	return postData[model.BackupJob](ctx, a.c, "/system-backup/disaster", nil)
}

// CreateDatabaseBackup starts a databases-only backup.
func (a *API) CreateDatabaseBackup(ctx context.Context) (*model.BackupJob, error) {
	return postData[model.BackupJob](ctx, a.c, "/system-backup/databases", nil)
}

// DeleteBackupJob removes a backup entry and its archive.
func (a *API) DeleteBackupJob(ctx context.Context, id string) error {
	return deleteOnly(ctx, a.c, fmt.Sprintf("/system-backup/jobs/%s", id))
}

// downloadToken is the payload of the token-issuing endpoints.
type downloadToken struct {
	Token string `json:"token"`
}

// CreateBackupDownloadToken requests a short-lived, single-use token for
// downloading a backup archive. The indirection keeps the session cookie
// out of shareable URLs.
func (a *API) CreateBackupDownloadToken(ctx context.Context, id string) (string, error) {
	tok, err := postData[downloadToken](ctx, a.c, fmt.Sprintf("/system-backup/jobs/%s/download-token", id), nil)
	if err != nil {
		return "", err
	}
	return tok.Token, nil
}

// BackupDownloadURL builds the direct download URL for a previously issued token.
func (a *API) BackupDownloadURL(id, token string) string {
	return fmt.Sprintf("%s/system-backup/jobs/%s/download?token=%s", a.c.BaseURL(), id, url.QueryEscape(token))
}
