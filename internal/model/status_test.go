package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackupJob_Terminal(t *testing.T) {
	cases := []struct {
		status  string
		done    bool
		success bool
	}{
		{BackupStatusPending, false, false},
		{BackupStatusProcessing, false, false},
		{BackupStatusUploaded, true, true},
		{BackupStatusFailed, true, false},
		{BackupStatusExpired, true, false},
	}

	for _, c := range cases {
		done, success := BackupJob{Status: c.status}.Terminal()
		assert.Equal(t, c.done, done, "status %s", c.status)
		assert.Equal(t, c.success, success, "status %s", c.status)
	}
}

func TestBackupJob_Outcome(t *testing.T) {
	job := BackupJob{Status: BackupStatusFailed, ErrorMessage: "disk full"}
	assert.Equal(t, "disk full", job.Outcome())

	job = BackupJob{Status: BackupStatusUploaded}
	assert.Equal(t, BackupStatusUploaded, job.Outcome())
}

func TestBackupJob_Duration(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	completed := created.Add(90 * time.Second)

	job := BackupJob{CreatedAt: created, CompletedAt: &completed}
	assert.Equal(t, 90*time.Second, job.Duration())

	assert.Zero(t, BackupJob{CreatedAt: created}.Duration())
}

func TestCleanupJob_Terminal(t *testing.T) {
	cases := []struct {
		status  string
		done    bool
		success bool
	}{
		{CleanupStatusPending, false, false},
		{CleanupStatusRunning, false, false},
		{CleanupStatusCompleted, true, true},
		{CleanupStatusFailed, true, false},
	}

	for _, c := range cases {
		done, success := CleanupJob{Status: c.status}.Terminal()
		assert.Equal(t, c.done, done, "status %s", c.status)
		assert.Equal(t, c.success, success, "status %s", c.status)
	}
}

func TestCleanupJob_Outcome(t *testing.T) {
	job := CleanupJob{Status: CleanupStatusFailed, Error: "permission denied"}
	assert.Equal(t, "permission denied", job.Outcome())

	job = CleanupJob{Status: CleanupStatusCompleted}
	assert.Equal(t, CleanupStatusCompleted, job.Outcome())
}
