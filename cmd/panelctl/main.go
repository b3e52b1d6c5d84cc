package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/edvin/panelctl/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := os.Args[1]
	args := os.Args[2:]

	var (
		app *cli.App
		err error
	)
	if cmd == "monitor" {
		app, err = cli.NewMonitorApp()
	} else {
		app, err = cli.NewApp()
	}
	if err != nil {
		fail(err)
	}

	switch cmd {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		user := fs.String("user", "", "Username (prompted if empty)")
		pass := fs.String("pass", "", "Password (prompted if empty)")
		fs.Parse(args)
		err = app.Login(ctx, *user, *pass)

	case "logout":
		err = app.Logout(ctx)

	case "whoami":
		err = app.WhoAmI(ctx)

	case "profile":
		err = runProfile(app, args)

	case "projects":
		err = runProjects(ctx, app, args)

	case "members":
		err = runMembers(ctx, app, args)

	case "containers":
		err = runContainers(ctx, app, args)

	case "databases":
		err = runDatabases(ctx, app, args)

	case "domains":
		err = runDomains(ctx, app, args)

	case "users":
		err = runUsers(ctx, app, args)

	case "email":
		err = runEmail(ctx, app, args)

	case "backups":
		err = runBackups(ctx, app, args)

	case "cleanup":
		err = runCleanup(ctx, app, args)

	case "automation":
		err = runAutomation(ctx, app, args)

	case "prefs":
		err = runPrefs(ctx, app, args)

	case "activity":
		fs := flag.NewFlagSet("activity", flag.ExitOnError)
		limit := fs.Int("limit", 20, "Number of entries")
		fs.Parse(args)
		err = app.ActivityList(ctx, *limit)

	case "overview":
		err = app.Overview(ctx)

	case "download":
		if len(args) < 1 {
			err = fmt.Errorf("usage: panelctl download <path>")
			break
		}
		err = app.Download(ctx, args[0])

	case "monitor":
		fs := flag.NewFlagSet("monitor", flag.ExitOnError)
		interval := fs.Duration("interval", 30*time.Second, "Refresh interval")
		fs.Parse(args)
		err = app.Monitor(ctx, *interval)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fail(err)
	}
}

func runProfile(app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl profile <add|list|use|rm>")
	}
	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: panelctl profile add <name> <api-url>")
		}
		return app.ProfileAdd(args[1], args[2])
	case "list":
		return app.ProfileList()
	case "use":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl profile use <name>")
		}
		return app.ProfileUse(args[1])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl profile rm <name>")
		}
		return app.ProfileDelete(args[1])
	default:
		return fmt.Errorf("unknown profile subcommand %q", args[0])
	}
}

func runProjects(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl projects <list|create|rm>")
	}
	switch args[0] {
	case "list":
		return app.ProjectsList(ctx)
	case "create":
		fs := flag.NewFlagSet("projects create", flag.ExitOnError)
		name := fs.String("name", "", "Project name (required)")
		desc := fs.String("desc", "", "Description")
		domain := fs.String("domain", "", "Primary domain")
		fs.Parse(args[1:])
		return app.ProjectsCreate(ctx, *name, *desc, *domain)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl projects rm <id>")
		}
		return app.ProjectsDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown projects subcommand %q", args[0])
	}
}

func runMembers(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl members <list|add|rm> -project <id>")
	}
	sub := args[0]
	fs := flag.NewFlagSet("members "+sub, flag.ExitOnError)
	project := fs.String("project", "", "Project id (required)")
	user := fs.String("user", "", "User id")
	role := fs.String("role", "viewer", "Role: owner, editor or viewer")
	fs.Parse(args[1:])

	if *project == "" {
		return fmt.Errorf("-project is required")
	}
	switch sub {
	case "list":
		return app.MembersList(ctx, *project)
	case "add":
		return app.MembersAdd(ctx, *project, *user, *role)
	case "rm":
		return app.MembersRemove(ctx, *project, *user)
	default:
		return fmt.Errorf("unknown members subcommand %q", sub)
	}
}

func runContainers(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl containers <list|start|stop|restart|stats|logs>")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("containers list", flag.ExitOnError)
		project := fs.String("project", "", "Filter by project id")
		fs.Parse(args[1:])
		return app.ContainersList(ctx, *project)
	case "start", "stop", "restart", "stats":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl containers %s <id>", args[0])
		}
		switch args[0] {
		case "start":
			return app.ContainerStart(ctx, args[1])
		case "stop":
			return app.ContainerStop(ctx, args[1])
		case "restart":
			return app.ContainerRestart(ctx, args[1])
		default:
			return app.ContainerStats(ctx, args[1])
		}
	case "logs":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl containers logs <id> [-tail n]")
		}
		fs := flag.NewFlagSet("containers logs", flag.ExitOnError)
		tail := fs.Int("tail", 100, "Number of log lines")
		fs.Parse(args[2:])
		return app.ContainerLogs(ctx, args[1], *tail)
	default:
		return fmt.Errorf("unknown containers subcommand %q", args[0])
	}
}

func runDatabases(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl databases <list|create|rm|password>")
	}
	switch args[0] {
	case "list":
		return app.DatabasesList(ctx)
	case "create":
		fs := flag.NewFlagSet("databases create", flag.ExitOnError)
		name := fs.String("name", "", "Database name (required)")
		engine := fs.String("engine", "postgres", "Engine: mysql, postgres or mariadb")
		project := fs.String("project", "", "Owning project id")
		fs.Parse(args[1:])
		return app.DatabasesCreate(ctx, *name, *engine, *project)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl databases rm <id>")
		}
		return app.DatabasesDelete(ctx, args[1])
	case "password":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl databases password <id> -password <new>")
		}
		fs := flag.NewFlagSet("databases password", flag.ExitOnError)
		password := fs.String("password", "", "New password (required)")
		fs.Parse(args[2:])
		return app.DatabasesPassword(ctx, args[1], *password)
	default:
		return fmt.Errorf("unknown databases subcommand %q", args[0])
	}
}

func runDomains(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl domains <list|create|rm|ssl>")
	}
	switch args[0] {
	case "list":
		return app.DomainsList(ctx)
	case "create":
		fs := flag.NewFlagSet("domains create", flag.ExitOnError)
		name := fs.String("name", "", "Fully qualified domain name (required)")
		target := fs.String("target", "", "Proxy target")
		project := fs.String("project", "", "Owning project id")
		fs.Parse(args[1:])
		return app.DomainsCreate(ctx, *name, *target, *project)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl domains rm <id>")
		}
		return app.DomainsDelete(ctx, args[1])
	case "ssl":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl domains ssl <id>")
		}
		return app.DomainsEnableSSL(ctx, args[1])
	default:
		return fmt.Errorf("unknown domains subcommand %q", args[0])
	}
}

func runUsers(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl users <list|create|rm|toggle|password>")
	}
	switch args[0] {
	case "list":
		return app.UsersList(ctx)
	case "create":
		fs := flag.NewFlagSet("users create", flag.ExitOnError)
		username := fs.String("username", "", "Username (required)")
		email := fs.String("email", "", "Email (required)")
		password := fs.String("password", "", "Password (required)")
		role := fs.String("role", "user", "Role: admin or user")
		fs.Parse(args[1:])
		return app.UsersCreate(ctx, *username, *email, *password, *role)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl users rm <id>")
		}
		return app.UsersDelete(ctx, args[1])
	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl users toggle <id>")
		}
		return app.UsersToggle(ctx, args[1])
	case "password":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl users password <id> -password <new>")
		}
		fs := flag.NewFlagSet("users password", flag.ExitOnError)
		password := fs.String("password", "", "New password (required)")
		fs.Parse(args[2:])
		return app.UsersPassword(ctx, args[1], *password)
	default:
		return fmt.Errorf("unknown users subcommand %q", args[0])
	}
}

func runEmail(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl email <list|create|rm>")
	}
	switch args[0] {
	case "list":
		return app.EmailList(ctx)
	case "create":
		fs := flag.NewFlagSet("email create", flag.ExitOnError)
		address := fs.String("address", "", "Mailbox address (required)")
		password := fs.String("password", "", "Mailbox password (required)")
		quota := fs.Int64("quota", 0, "Quota in bytes, 0 for unlimited")
		fs.Parse(args[1:])
		return app.EmailCreate(ctx, *address, *password, *quota)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl email rm <id>")
		}
		return app.EmailDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown email subcommand %q", args[0])
	}
}

func runBackups(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl backups <list|create|rm|download>")
	}
	switch args[0] {
	case "list":
		return app.BackupsList(ctx)
	case "create":
		fs := flag.NewFlagSet("backups create", flag.ExitOnError)
		kind := fs.String("type", "system", "Backup type: system, disaster or databases")
		wait := fs.Bool("wait", false, "Poll until the job reaches a terminal state")
		fs.Parse(args[1:])
		return app.BackupsCreate(ctx, *kind, *wait)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl backups rm <id>")
		}
		return app.BackupsDelete(ctx, args[1])
	case "download":
		if len(args) < 2 {
			return fmt.Errorf("usage: panelctl backups download <id>")
		}
		return app.BackupsDownload(ctx, args[1])
	default:
		return fmt.Errorf("unknown backups subcommand %q", args[0])
	}
}

func runPrefs(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl prefs <get|set>")
	}
	switch args[0] {
	case "get":
		return app.PrefsGet(ctx)
	case "set":
		fs := flag.NewFlagSet("prefs set", flag.ExitOnError)
		theme := fs.String("theme", "", "UI theme")
		language := fs.String("language", "", "UI language")
		refresh := fs.Int("refresh", 0, "Dashboard refresh interval in seconds")
		fs.Parse(args[1:])
		return app.PrefsSet(ctx, *theme, *language, *refresh)
	default:
		return fmt.Errorf("unknown prefs subcommand %q", args[0])
	}
}

func runCleanup(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl cleanup <analyze|run>")
	}
	switch args[0] {
	case "analyze":
		return app.CleanupAnalyze(ctx)
	case "run":
		fs := flag.NewFlagSet("cleanup run", flag.ExitOnError)
		categories := fs.String("categories", "", "Comma-separated categories, empty for all reclaimable")
		wait := fs.Bool("wait", false, "Poll until the cleanup finishes")
		fs.Parse(args[1:])
		var cats []string
		if *categories != "" {
			cats = strings.Split(*categories, ",")
		}
		return app.CleanupRun(ctx, cats, *wait)
	default:
		return fmt.Errorf("unknown cleanup subcommand %q", args[0])
	}
}

func runAutomation(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: panelctl automation <status|start|stop|restart>")
	}
	switch args[0] {
	case "status":
		return app.AutomationStatus(ctx)
	case "start":
		return app.AutomationStart(ctx)
	case "stop":
		return app.AutomationStop(ctx)
	case "restart":
		return app.AutomationRestart(ctx)
	default:
		return fmt.Errorf("unknown automation subcommand %q", args[0])
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: panelctl <command> [subcommand] [flags]

Commands:
  login               Open a session (prompts for credentials)
  logout              Close the current session
  whoami              Show the authenticated user
  profile             Manage saved panel endpoints (add, list, use, rm)
  projects            Manage projects (list, create, rm)
  members             Manage project members (list, add, rm)
  containers          Manage containers (list, start, stop, restart, stats, logs)
  databases           Manage databases (list, create, rm, password)
  domains             Manage domains (list, create, rm, ssl)
  users               Manage panel users (list, create, rm, toggle, password)
  email               Manage mailboxes (list, create, rm)
  backups             Manage backups (list, create [-type t] [-wait], rm, download)
  cleanup             Disk cleanup (analyze, run [-wait])
  automation          Control the n8n service (status, start, stop, restart)
  prefs               Show or change stored UI preferences (get, set)
  activity            Show the activity feed
  overview            Show the dashboard aggregate
  download <path>     Print a tokenized download link for a file
  monitor             Keep refreshing the overview, optionally serving /metrics

Environment:
  PANEL_API_URL       Panel API base URL (default http://localhost:3000/api)
  PANEL_USERNAME      Username for non-interactive authentication
  PANEL_PASSWORD      Password for non-interactive authentication
  PANEL_METRICS_ADDR  Listen address for the monitor /metrics endpoint`)
}
