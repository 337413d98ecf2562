// Package cli holds the thin cobra plumbing shared by all commands.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type CLI struct {
	rootCmd *cobra.Command
}

func NewCLI(name, short string) *CLI {
	return &CLI{
		rootCmd: &cobra.Command{
			Use:           name,
			Short:         short,
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}
}

func (c *CLI) AddCommands(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		c.rootCmd.AddCommand(cmd)
	}
}

func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

// Input carries per-invocation dependencies into command run functions.
type Input struct {
	Logger *slog.Logger
}

// WithContext adapts a run function to cobra's RunE, wiring a logger and a
// context cancelled on SIGINT/SIGTERM.
func WithContext(f func(ctx context.Context, input Input) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.TimeOnly,
		}))

		return f(ctx, Input{Logger: logger})
	}
}
