package console

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// login exchanges credentials for a token, stores it, and lands on the
// dashboard. A failed login stores nothing and stays put.
func (c *Console) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("console: login: %w", err)
	}

	if *email == "" {
		v, err := c.term.ReadLine("Email")
		if err != nil {
			return fmt.Errorf("console: read email: %w", err)
		}
		*email = v
	}
	if *password == "" {
		v, err := c.term.ReadLine("Password")
		if err != nil {
			return fmt.Errorf("console: read password: %w", err)
		}
		*password = v
	}

	var tok string
	err := c.fetch("Signing in", func() error {
		var err error
		tok, err = c.api.Login(ctx, *email, *password)
		return err
	})
	if err != nil {
		return err
	}

	if err := c.tokens.SetToken(tok); err != nil {
		return err
	}
	c.log.WithField("email", *email).Info("login successful")
	c.term.Success("Login successful — welcome back!")

	return c.dashboard(ctx)
}

// logout destroys the live session.
func (c *Console) logout() error {
	if err := c.tokens.Clear(); err != nil {
		return err
	}
	c.term.Success("Logged out")
	return nil
}
