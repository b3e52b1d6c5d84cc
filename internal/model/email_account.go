package model

import "time"

type EmailAccount struct {
	ID         string    `json:"id"`
	Address    string    `json:"address"`
	DomainID   string    `json:"domainId"`
	QuotaBytes int64     `json:"quotaBytes,omitempty"`
	UsedBytes  int64     `json:"usedBytes,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}
