package model

import "time"

type Database struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Engine    string    `json:"engine"`
	Version   string    `json:"version,omitempty"`
	Host      string    `json:"host"`
	Port      int       `json:"port"`
	Username  string    `json:"username"`
	ProjectID string    `json:"projectId,omitempty"`
	SizeBytes int64     `json:"sizeBytes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Database engines the panel can provision.
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineMariaDB  = "mariadb"
)
