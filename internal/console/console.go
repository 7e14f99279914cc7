// Package console implements the admin screens. Each screen fetches fresh
// state through the API facade, reshapes it through the view models, and
// renders to the terminal; mutations are always followed by a re-fetch so
// the screen reflects the action.
package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spicetable/admin-console/internal/adminapi"
	"github.com/spicetable/admin-console/internal/cli"
	"github.com/spicetable/admin-console/internal/config"
	"github.com/spicetable/admin-console/internal/restclient"
	"github.com/spicetable/admin-console/internal/token"
)

// Console hosts the screens and their shared dependencies.
type Console struct {
	api    *adminapi.Client
	tokens token.Store
	cfg    *config.Config
	term   *cli.Terminal
	log    *logrus.Logger
}

func New(api *adminapi.Client, tokens token.Store, cfg *config.Config, term *cli.Terminal, log *logrus.Logger) *Console {
	return &Console{api: api, tokens: tokens, cfg: cfg, term: term, log: log}
}

// Run dispatches one screen command. No command lands on usage, which
// points at login, and unknown commands render the not-found message.
func (c *Console) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return nil
	}

	var err error
	switch args[0] {
	case "login":
		err = c.login(ctx, args[1:])
	case "logout":
		err = c.logout()
	case "dashboard":
		err = c.dashboard(ctx)
	case "categories":
		err = c.categories(ctx, args[1:])
	case "items":
		err = c.items(ctx, args[1:])
	case "orders":
		err = c.orders(ctx, args[1:])
	case "reservations":
		err = c.reservations(ctx, args[1:])
	case "reviews":
		err = c.reviews(ctx, args[1:])
	case "completion":
		shell := "bash"
		if len(args) > 1 {
			shell = args[1]
		}
		err = cli.WriteCompletion(c.term.Out(), shell)
	case "help":
		c.usage()
	default:
		c.term.Errorf("unknown screen %q", args[0])
		c.usage()
		return fmt.Errorf("console: unknown screen %q", args[0])
	}

	if err != nil {
		c.report(err)
	}
	return err
}

// report renders an error the way the screens surface toasts. A 401 has
// already cleared the session by the time it gets here; the extra notice is
// the login redirect.
func (c *Console) report(err error) {
	if errors.Is(err, restclient.ErrUnauthorized) {
		c.term.Warn("Session expired — run 'admin-console login' to sign in again")
		return
	}
	c.term.Errorf("%v", err)
}

// fetch runs fn under a loading spinner.
func (c *Console) fetch(prefix string, fn func() error) error {
	spinner := c.term.NewSpinner(prefix)
	spinner.Start()
	defer spinner.Stop()
	return fn()
}

func (c *Console) usage() {
	c.term.Printf(`admin-console — restaurant platform administration

Usage:
  admin-console login [-email E] [-password P]
  admin-console logout
  admin-console dashboard
  admin-console categories [-create|-update ID|-delete ID] [-name N] [-description D] [-orderable]
  admin-console items -category ID [-page N] [-limit N]
  admin-console items [-add -category ID|-update ID|-delete ID] [-name N] [-price P] [-description D] [-available] [-image PATH]
  admin-console orders [-page N] [-limit N] [-status S]
  admin-console orders -id ID [-set-status S]
  admin-console reservations [-page N] [-limit N]
  admin-console reservations -id ID [-set-status S]
  admin-console reviews [-page N] [-limit N] [-delete ID]
  admin-console completion [bash|zsh]

Sign in first: admin-console login
`)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func money(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
