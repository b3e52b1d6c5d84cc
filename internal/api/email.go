package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/model"
)

type CreateEmailAccount struct {
	Address    string `json:"address" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	QuotaBytes int64  `json:"quotaBytes" validate:"omitempty,min=0"`
}

type UpdateEmailQuota struct {
	QuotaBytes int64 `json:"quotaBytes" validate:"min=0"`
}

// ListEmailAccounts returns all email accounts.
func (a *API) ListEmailAccounts(ctx context.Context) ([]model.EmailAccount, error) {
	items, err := getData[[]model.EmailAccount](ctx, a.c, "/email/accounts")
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// CreateEmailAccount creates a mailbox.
func (a *API) CreateEmailAccount(ctx context.Context, input CreateEmailAccount) (*model.EmailAccount, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return postData[model.EmailAccount](ctx, a.c, "/email/accounts", input)
}

// DeleteEmailAccount removes a mailbox.
func (a *API) DeleteEmailAccount(ctx context.Context, id string) error {
	return deleteOnly(ctx, a.c, fmt.Sprintf("/email/accounts/%s", id))
}

// UpdateEmailQuota changes a mailbox quota.
func (a *API) UpdateEmailQuota(ctx context.Context, id string, input UpdateEmailQuota) (*model.EmailAccount, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return putData[model.EmailAccount](ctx, a.c, fmt.Sprintf("/email/accounts/%s/quota", id), input)
}
