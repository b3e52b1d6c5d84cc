package model

import "time"

// BackupJob is a long-running backup entry as returned by the system-backup
// endpoints. The backend owns the lifecycle; UPLOADED and FAILED are the
// terminal states the client reacts to, EXPIRED is a passive terminal state.
type BackupJob struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	SizeBytes    int64      `json:"sizeBytes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
}

// JobID implements jobs.Entry.
func (b BackupJob) JobID() string { return b.ID }

// CreatedTime implements jobs.Entry.
func (b BackupJob) CreatedTime() time.Time { return b.CreatedAt }

// Terminal reports whether the job reached a terminal status and, if so,
// whether it succeeded.
func (b BackupJob) Terminal() (done, success bool) {
	switch b.Status {
	case BackupStatusUploaded:
		return true, true
	case BackupStatusFailed, BackupStatusExpired:
		return true, false
	default:
		return false, false
	}
}

// Outcome implements jobs.Entry. For failed jobs it carries the
// backend-provided error string.
func (b BackupJob) Outcome() string {
	if b.ErrorMessage != "" {
		return b.ErrorMessage
	}
	return b.Status
}

// Duration returns how long the job ran, or zero if it has not completed.
func (b BackupJob) Duration() time.Duration {
	if b.CompletedAt == nil {
		return 0
	}
	return b.CompletedAt.Sub(b.CreatedAt)
}
