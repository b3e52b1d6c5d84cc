package model

import "time"

type Domain struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ProjectID  string     `json:"projectId,omitempty"`
	SSLEnabled bool       `json:"sslEnabled"`
	SSLExpiry  *time.Time `json:"sslExpiry,omitempty"`
	Target     string     `json:"target,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}
