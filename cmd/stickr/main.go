// Command stickr drives the transform engine from a touch screen, the mouse
// or a recorded gesture script.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/stickr"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "stickr",
		Short:        "Touch-driven translate, scale, rotate and tilt of a single image",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML file overriding engine constants")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// newEngine loads the configuration and builds an engine logging through
// the command's logger.
func (o *rootOptions) newEngine(ctx context.Context) (*stickr.Engine, error) {
	logger := loggerFromContext(ctx)
	cfg := stickr.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = stickr.LoadConfig(o.configPath); err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "path", o.configPath)
	}
	e, err := stickr.New(cfg)
	if err != nil {
		return nil, err
	}
	e.SetLogger(logger)
	e.SetDebugMode(o.verbose)
	return e, nil
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective engine configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.newEngine(cmd.Context())
			if err != nil {
				return err
			}
			return e.Config().Write(cmd.OutOrStdout())
		},
	}
}
