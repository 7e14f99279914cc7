// Command admin-console is the terminal back office for the restaurant
// platform: sign in, then browse and manage the menu, orders, reservations
// and reviews against the admin API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/spicetable/admin-console/internal/adminapi"
	"github.com/spicetable/admin-console/internal/cli"
	"github.com/spicetable/admin-console/internal/config"
	"github.com/spicetable/admin-console/internal/console"
	"github.com/spicetable/admin-console/internal/restclient"
	"github.com/spicetable/admin-console/internal/token"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "admin-console: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	envFile := flag.String("env", ".env", "path to a .env file (optional)")
	flag.Parse()

	// A missing .env is the normal case outside development.
	_ = godotenv.Load(*envFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	tokens, err := token.NewFileStore(cfg.TokenPath)
	if err != nil {
		return err
	}

	term := cli.New(os.Stdin, os.Stdout)

	httpClient := &http.Client{}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	rest, err := restclient.New(restclient.Config{
		BaseURL:    cfg.BaseURL,
		Tokens:     tokens,
		HTTPClient: httpClient,
		Logger:     log,
		OnUnauthorized: func() {
			log.Debug("session evicted after 401")
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := console.New(adminapi.New(rest), tokens, cfg, term, log)
	return app.Run(ctx, flag.Args())
}
