package cli

import (
	"context"
	"fmt"
	"time"
)

// Overview prints the dashboard aggregate: system stats, disks, projects,
// containers and recent activity, fetched concurrently.
func (a *App) Overview(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	data, err := a.Stores.Overview.Fetch(ctx)
	if err != nil {
		return err
	}

	uptime := time.Duration(data.Stats.UptimeSeconds) * time.Second
	fmt.Fprintf(a.Out, "cpu %.1f%%  mem %s / %s  up %s\n",
		data.Stats.CPUPercent,
		formatBytes(data.Stats.MemoryUsed), formatBytes(data.Stats.MemoryTotal),
		uptime.Truncate(time.Minute))

	for _, d := range data.Disks {
		fmt.Fprintf(a.Out, "disk %-12s %s / %s (%.1f%%)\n",
			d.Mount, formatBytes(d.UsedBytes), formatBytes(d.TotalBytes), d.UsedPercent)
	}

	fmt.Fprintf(a.Out, "projects %d  containers %d running / %d total\n",
		len(data.Projects), data.RunningContainers(), len(data.Containers))

	if len(data.Activity) > 0 {
		fmt.Fprintln(a.Out, "recent activity:")
		for _, e := range data.Activity {
			fmt.Fprintf(a.Out, "  %s %s %s %s\n", formatTime(e.CreatedAt), dash(e.Username), e.Action, e.Resource)
		}
	}
	return nil
}
