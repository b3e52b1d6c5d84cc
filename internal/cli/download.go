package cli

import (
	"context"
	"fmt"
)

// Download prints a direct download link for a file-manager path. The link
// embeds a short-lived single-use token instead of the session cookie.
func (a *App) Download(ctx context.Context, path string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	token, err := a.API.CreateFileDownloadToken(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, a.API.FileDownloadURL(token))
	return nil
}
