// SPDX-License-Identifier: MIT
// Package: lvlalg/cmd/lvlalg/cmd
//
// root.go — command tree, shared flags and the slog setup.

// Package cmd implements the lvlalg command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/config"
)

// ExitError carries a non-zero process exit code out of a command.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// globals are the persistent flags shared by every subcommand.
type globals struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds a fresh command tree; tests build one per case.
func NewRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "lvlalg",
		Short: "Randomized algebra exercise generator",
		Long: `lvlalg builds combined-operation exercises over numbers or algebraic
fractions and prints them as LaTeX together with the simplified solution.

Configuration is read from --config, else $` + config.EnvConfigPath + `, else built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.cfgFile, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newGenerateCmd(g),
		newServeCmd(g),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (g *globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(g.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// logger writes text records to w: Debug with --verbose, Warn otherwise.
func (g *globals) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
