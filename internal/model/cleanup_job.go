package model

import "time"

// CleanupJob is a disk-cleanup run. Progress and current step are polled
// from the backend, never computed locally.
type CleanupJob struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	Progress        int       `json:"progress"`
	CurrentStep     string    `json:"currentStep"`
	TotalFreed      int64     `json:"totalFreed,omitempty"`
	DiskUsageBefore float64   `json:"diskUsageBefore,omitempty"`
	DiskUsageAfter  float64   `json:"diskUsageAfter,omitempty"`
	Error           string    `json:"error,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// JobID implements jobs.Entry.
func (c CleanupJob) JobID() string { return c.ID }

// CreatedTime implements jobs.Entry.
func (c CleanupJob) CreatedTime() time.Time { return c.CreatedAt }

// Terminal reports whether the cleanup reached a terminal status.
func (c CleanupJob) Terminal() (done, success bool) {
	switch c.Status {
	case CleanupStatusCompleted:
		return true, true
	case CleanupStatusFailed:
		return true, false
	default:
		return false, false
	}
}

// Outcome implements jobs.Entry.
func (c CleanupJob) Outcome() string {
	if c.Error != "" {
		return c.Error
	}
	return c.Status
}

// CleanupCategory is one reclaimable category found by the analyze endpoint.
type CleanupCategory struct {
	Name        string `json:"name"`
	SizeBytes   int64  `json:"sizeBytes"`
	Reclaimable bool   `json:"reclaimable"`
	Description string `json:"description,omitempty"`
}

// CleanupAnalysis is the result of the pre-cleanup disk analysis.
type CleanupAnalysis struct {
	Categories []CleanupCategory `json:"categories"`
	DiskUsage  float64           `json:"diskUsage"`
	AnalyzedAt time.Time         `json:"analyzedAt"`
}
