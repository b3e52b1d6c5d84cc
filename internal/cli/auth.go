package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/config"
)

// Login opens a session and reports the authenticated user. Missing
// username or password are prompted for on stdin.
func (a *App) Login(ctx context.Context, username, password string) error {
	reader := bufio.NewReader(os.Stdin)

	if username == "" {
		fmt.Fprint(a.Out, "Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Fprint(a.Out, "Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	user, err := a.API.Login(ctx, api.LoginInput{Username: username, Password: password})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.API.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Session closed")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	user, err := a.API.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s <%s> role=%s active=%t\n", user.Username, user.Email, user.Role, user.Active)
	return nil
}

// ProfileAdd saves a named panel endpoint and selects it.
func (a *App) ProfileAdd(name, apiURL string) error {
	p, err := config.SaveProfile(name, apiURL)
	if err != nil {
		return err
	}
	if err := config.SetActive(p.Name); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Profile %s -> %s (active)\n", p.Name, p.APIURL)
	return nil
}

func (a *App) ProfileList() error {
	profiles, err := config.ListProfiles()
	if err != nil {
		return err
	}
	active, _ := config.GetActive()

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		marker := ""
		if p.Name == active {
			marker = "*"
		}
		rows = append(rows, []string{marker, p.Name, p.APIURL})
	}
	a.table([]string{"", "NAME", "API URL"}, rows)
	return nil
}

func (a *App) ProfileUse(name string) error {
	if _, err := config.LoadProfile(name); err != nil {
		return err
	}
	if err := config.SetActive(name); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Active profile: %s\n", name)
	return nil
}

func (a *App) ProfileDelete(name string) error {
	if err := config.DeleteProfile(name); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Deleted profile %s\n", name)
	return nil
}
