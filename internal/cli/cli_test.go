package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/client"
	"github.com/edvin/panelctl/internal/config"
	"github.com/edvin/panelctl/internal/store"
)

func newTestApp(t *testing.T, mux *http.ServeMux) (*App, *bytes.Buffer) {
	t.Helper()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"u1","username":"admin","role":"admin","active":true,"createdAt":"2025-01-01T00:00:00Z"}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	a := api.New(c)

	out := &bytes.Buffer{}
	app := &App{
		Config: &config.Config{
			APIURL:         srv.URL,
			Username:       "admin",
			Password:       "secret123",
			PollInterval:   10 * time.Millisecond,
			TriggerTimeout: 100 * time.Millisecond,
		},
		Log:    zerolog.Nop(),
		API:    a,
		Stores: store.New(a, zerolog.Nop()),
		Out:    out,
	}
	return app, out
}

// ---------- Formatting ----------

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KiB", formatBytes(1024))
	assert.Equal(t, "1.5 MiB", formatBytes(3*1024*1024/2))
	assert.Equal(t, "2.0 GiB", formatBytes(2<<30))
}

// ---------- Listing ----------

func TestProjectsList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":"p1","name":"blog","status":"active","createdAt":"2025-01-01T00:00:00Z"}]}`))
	})
	app, out := newTestApp(t, mux)

	require.NoError(t, app.ProjectsList(context.Background()))
	assert.Contains(t, out.String(), "blog")
	assert.Contains(t, out.String(), "active")
}

func TestEnsureAuth_MissingCredentials(t *testing.T) {
	app, _ := newTestApp(t, http.NewServeMux())
	app.Config.Username = ""

	err := app.EnsureAuth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credentials configured")
}

// ---------- Backup wait flow ----------

// End to end through the CLI: the trigger resolves with a job id, polling
// picks up the UPLOADED entry and the panel's success wording is printed.
func TestBackupsCreate_WaitSuccess(t *testing.T) {
	created := time.Now().UTC().Add(time.Second).Format(time.RFC3339)

	mux := http.NewServeMux()
	mux.HandleFunc("/system-backup/system", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"data":{"id":"job-7","type":"SYSTEM_TEMPLATE","status":"PENDING","createdAt":%q}}`, created)
	})
	mux.HandleFunc("/system-backup/jobs", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"data":[{"id":"job-7","type":"SYSTEM_TEMPLATE","status":"UPLOADED","sizeBytes":1024,"createdAt":%q}]}`, created)
	})
	app, out := newTestApp(t, mux)

	require.NoError(t, app.BackupsCreate(context.Background(), "system", true))
	assert.Contains(t, out.String(), "Backup sistema creato con successo!")
}

func TestBackupsCreate_WaitFailure(t *testing.T) {
	created := time.Now().UTC().Add(time.Second).Format(time.RFC3339)

	mux := http.NewServeMux()
	mux.HandleFunc("/system-backup/system", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"data":{"id":"job-8","type":"SYSTEM_TEMPLATE","status":"PENDING","createdAt":%q}}`, created)
	})
	mux.HandleFunc("/system-backup/jobs", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"data":[{"id":"job-8","type":"SYSTEM_TEMPLATE","status":"FAILED","errorMessage":"disk full","createdAt":%q}]}`, created)
	})
	app, _ := newTestApp(t, mux)

	err := app.BackupsCreate(context.Background(), "system", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestBackupsCreate_UnknownType(t *testing.T) {
	app, _ := newTestApp(t, http.NewServeMux())

	err := app.BackupsCreate(context.Background(), "incremental", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backup type")
}
