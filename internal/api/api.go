// Package api maps panel UI actions one-to-one onto REST endpoints, grouped
// by resource. Each function issues exactly one HTTP call through the shared
// client and returns the decoded envelope data; no business logic, branching
// or retries live here.
package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/client"
	"github.com/edvin/panelctl/internal/model"
)

// API groups the per-resource endpoint modules around one shared client.
type API struct {
	c *client.Client
}

func New(c *client.Client) *API {
	return &API{c: c}
}

// getData fetches path and returns the envelope payload.
func getData[T any](ctx context.Context, c *client.Client, path string) (*T, error) {
	var env model.Envelope[T]
	if err := c.Get(ctx, path, &env); err != nil {
		return nil, err
	}
	return unwrap(env)
}

// postData posts body to path and returns the envelope payload.
func postData[T any](ctx context.Context, c *client.Client, path string, body any) (*T, error) {
	var env model.Envelope[T]
	if err := c.Post(ctx, path, body, &env); err != nil {
		return nil, err
	}
	return unwrap(env)
}

// putData puts body to path and returns the envelope payload.
func putData[T any](ctx context.Context, c *client.Client, path string, body any) (*T, error) {
	var env model.Envelope[T]
	if err := c.Put(ctx, path, body, &env); err != nil {
		return nil, err
	}
	return unwrap(env)
}

// deleteOnly issues a DELETE and discards the payload.
func deleteOnly(ctx context.Context, c *client.Client, path string) error {
	var env model.Envelope[struct{}]
	if err := c.Delete(ctx, path, &env); err != nil {
		return err
	}
	if !env.Success && env.Error != nil {
		return fmt.Errorf("panel API error: %s", env.Error.Message)
	}
	return nil
}

// postOnly issues a POST and discards the payload.
func postOnly(ctx context.Context, c *client.Client, path string, body any) error {
	var env model.Envelope[struct{}]
	if err := c.Post(ctx, path, body, &env); err != nil {
		return err
	}
	if !env.Success && env.Error != nil {
		return fmt.Errorf("panel API error: %s", env.Error.Message)
	}
	return nil
}

// unwrap validates the envelope and extracts its payload. A 2xx response
// with success=false still carries a structured error.
func unwrap[T any](env model.Envelope[T]) (*T, error) {
	if !env.Success {
		if env.Error != nil {
			return nil, fmt.Errorf("panel API error: %s", env.Error.Message)
		}
		return nil, fmt.Errorf("panel API error: request not successful")
	}
	if env.Data == nil {
		return new(T), nil
	}
	return env.Data, nil
}
