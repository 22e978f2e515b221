// SPDX-License-Identifier: MIT
// Package: lvlalg/cmd/lvlalg/cmd
//
// serve.go — run the HTTP module under mono with signal-driven shutdown.

package cmd

import (
	"context"
	"fmt"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/server"
)

func newServeCmd(g *globals) *cobra.Command {
	var (
		host string
		port int
	)
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve exercises over HTTP",
		Long: `Serve an HTML exercise page on / and a JSON API on /api/exercise.

The process stops gracefully on SIGINT or SIGTERM, waiting up to
server.shutdown_timeout for in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if c.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if c.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := g.logger(c.ErrOrStderr())
			timeout := cfg.Server.ShutdownTimeout.Duration

			app, err := mono.NewMonoApplication(
				mono.WithShutdownTimeout(timeout),
				mono.WithLogLevel(mono.LogLevelInfo),
				mono.WithLogFormat(mono.LogFormatText),
			)
			if err != nil {
				return fmt.Errorf("create application: %w", err)
			}
			if err := app.Register(server.New(cfg, logger)); err != nil {
				return fmt.Errorf("register %s: %w", server.ModuleName, err)
			}
			if err := app.Start(context.Background()); err != nil {
				return fmt.Errorf("start application: %w", err)
			}
			fmt.Fprintf(c.OutOrStdout(), "serving exercises on http://%s/ (Ctrl+C to stop)\n", cfg.Server.Addr())

			wait := gfshutdown.GracefulShutdown(context.Background(), timeout, map[string]gfshutdown.Operation{
				"mono-app": func(ctx context.Context) error {
					logger.Info("graceful shutdown initiated")
					return app.Stop(ctx)
				},
			})
			if code := <-wait; code != 0 {
				return ExitError{Code: code}
			}
			return nil
		},
	}
	c.Flags().StringVar(&host, "host", "", "listen host (overrides server.host)")
	c.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return c
}
