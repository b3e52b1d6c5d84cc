package api

import (
	"context"
	"fmt"
	"net/url"
)

// CreateFileDownloadToken requests a short-lived, single-use download token
// for a file-manager path, so the session cookie never ends up in a URL.
func (a *API) CreateFileDownloadToken(ctx context.Context, path string) (string, error) {
	tok, err := postData[downloadToken](ctx, a.c, "/files/download-token", map[string]string{"path": path})
	if err != nil {
		return "", err
	}
	return tok.Token, nil
}

// FileDownloadURL builds the direct download URL for an issued token.
func (a *API) FileDownloadURL(token string) string {
	return fmt.Sprintf("%s/files/download?token=%s", a.c.BaseURL(), url.QueryEscape(token))
}
