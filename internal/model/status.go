package model

// Backup job statuses. Transitions are owned by the backend; the client
// only observes them.
const (
	BackupStatusPending    = "PENDING"
	BackupStatusProcessing = "PROCESSING"
	BackupStatusUploaded   = "UPLOADED"
	BackupStatusFailed     = "FAILED"
	BackupStatusExpired    = "EXPIRED"
)

// Backup job types.
const (
	BackupTypeSystemTemplate = "SYSTEM_TEMPLATE"
	BackupTypeFullDisaster   = "FULL_DISASTER"
	BackupTypeDatabases      = "databases"
	BackupTypeFullSystem     = "full-system"
)

// Cleanup job statuses.
const (
	CleanupStatusPending   = "pending"
	CleanupStatusRunning   = "running"
	CleanupStatusCompleted = "completed"
	CleanupStatusFailed    = "failed"
)

// Container states as reported by the docker endpoints.
const (
	ContainerStateRunning    = "running"
	ContainerStateExited     = "exited"
	ContainerStatePaused     = "paused"
	ContainerStateRestarting = "restarting"
)

// Automation service states (n8n lifecycle).
const (
	ServiceStateRunning = "running"
	ServiceStateStopped = "stopped"
	ServiceStateError   = "error"
)
