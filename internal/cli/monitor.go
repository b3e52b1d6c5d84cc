package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/edvin/panelctl/internal/metrics"
)

// Monitor keeps refreshing the dashboard aggregate until the context is
// cancelled, serving client metrics over /metrics when an address is
// configured. Intended to feed a Prometheus scrape of panel reachability.
func (a *App) Monitor(ctx context.Context, interval time.Duration) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}

	if a.Config.MetricsAddr != "" && a.Registry != nil {
		srv := metrics.NewServer(a.Config.MetricsAddr, a.Registry)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.Log.Error().Err(err).Msg("metrics server failed")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		a.Log.Info().Str("addr", a.Config.MetricsAddr).Msg("serving metrics")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if data, err := a.Stores.Overview.Fetch(ctx); err != nil {
			a.Log.Warn().Err(err).Msg("overview refresh failed")
		} else {
			fmt.Fprintf(a.Out, "%s cpu %.1f%% containers %d/%d\n",
				time.Now().Format(time.TimeOnly),
				data.Stats.CPUPercent, data.RunningContainers(), len(data.Containers))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
