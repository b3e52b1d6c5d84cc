package model

import "time"

// SystemStats is the server resource snapshot shown on the dashboard.
type SystemStats struct {
	CPUPercent    float64   `json:"cpuPercent"`
	MemoryUsed    int64     `json:"memoryUsed"`
	MemoryTotal   int64     `json:"memoryTotal"`
	LoadAverage   []float64 `json:"loadAverage,omitempty"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
	ReadAt        time.Time `json:"readAt"`
}

// DiskUsage describes one mounted filesystem.
type DiskUsage struct {
	Mount       string  `json:"mount"`
	UsedBytes   int64   `json:"usedBytes"`
	TotalBytes  int64   `json:"totalBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

// ServiceStatus is the lifecycle state of a managed service (e.g. n8n).
type ServiceStatus struct {
	Name      string     `json:"name"`
	State     string     `json:"state"`
	Version   string     `json:"version,omitempty"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	Message   string     `json:"message,omitempty"`
}
