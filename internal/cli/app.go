// Package cli implements the panelctl subcommands. Each command is a thin
// method on App: it calls the API or a store, formats the result for the
// terminal and returns an error for main to print and exit on.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/client"
	"github.com/edvin/panelctl/internal/config"
	"github.com/edvin/panelctl/internal/logging"
	"github.com/edvin/panelctl/internal/metrics"
	"github.com/edvin/panelctl/internal/store"
)

type App struct {
	Config *config.Config
	Log    zerolog.Logger
	API    *api.API
	Stores *store.Stores
	Out    io.Writer

	// Registry is non-nil only for the monitor command, which serves it
	// over /metrics.
	Registry *prometheus.Registry
}

// NewApp builds the command environment from env config and the active
// profile, if one is selected.
func NewApp() (*App, error) {
	return newApp(false)
}

// NewMonitorApp is NewApp plus a metrics registry wired into the HTTP
// client, for the long-running monitor command.
func NewMonitorApp() (*App, error) {
	return newApp(true)
}

func newApp(withMetrics bool) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// The active profile overrides the env default endpoint.
	if name, err := config.GetActive(); err == nil && name != "" {
		if p, err := config.LoadProfile(name); err == nil {
			cfg.APIURL = p.APIURL
		}
	}

	log := logging.NewLogger(cfg)

	opts := []client.Option{
		client.WithLogger(log),
		client.WithTimeout(cfg.RequestTimeout),
	}

	var reg *prometheus.Registry
	if withMetrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, client.WithMetrics(metrics.NewClientMetrics(reg)))
	}

	c, err := client.New(cfg.APIURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	a := api.New(c)
	return &App{
		Config:   cfg,
		Log:      log,
		API:      a,
		Stores:   store.New(a, log),
		Out:      os.Stdout,
		Registry: reg,
	}, nil
}

// EnsureAuth opens a session with the configured credentials. The session
// cookie lives in the client's jar for the rest of the process.
func (a *App) EnsureAuth(ctx context.Context) error {
	if a.Config.Username == "" {
		return fmt.Errorf("no credentials configured, set PANEL_USERNAME and PANEL_PASSWORD or run panelctl login")
	}
	_, err := a.API.Login(ctx, api.LoginInput{
		Username: a.Config.Username,
		Password: a.Config.Password,
	})
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	return nil
}
