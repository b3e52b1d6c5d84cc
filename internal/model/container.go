package model

import "time"

type Container struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	State     string    `json:"state"`
	Status    string    `json:"status"`
	ProjectID string    `json:"projectId,omitempty"`
	Ports     []Port    `json:"ports,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Port struct {
	Private int    `json:"private"`
	Public  int    `json:"public,omitempty"`
	Proto   string `json:"proto"`
}

// ContainerStats is a point-in-time resource snapshot for one container.
type ContainerStats struct {
	ContainerID string    `json:"containerId"`
	CPUPercent  float64   `json:"cpuPercent"`
	MemoryUsage int64     `json:"memoryUsage"`
	MemoryLimit int64     `json:"memoryLimit"`
	NetworkRx   int64     `json:"networkRx"`
	NetworkTx   int64     `json:"networkTx"`
	ReadAt      time.Time `json:"readAt"`
}
