// Package cli wires the haiku command together.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/henri123lemoine/plant-haiku/internal/config"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:           "haiku",
		Short:         "Show a random plant haiku",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			opts.HasSeed = c.Flags().Changed("seed")
			return Run(ctx, opts, c.OutOrStdout(), c.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "print a plain text block even on a terminal")
	cmd.Flags().BoolVar(&opts.Widget, "widget", false, "write the panel to the widget file instead of previewing it")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for a reproducible choice")
	cmd.Flags().StringVar(&opts.Match, "match", "", "only choose haikus that fuzzy-match this text")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.ConfigPath()+")")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	cmd.AddCommand(initConfigCmd())
	return cmd
}

func initConfigCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a commented default config file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if path == "" {
				path = config.ConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.CreateDefaultConfigFile(path); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "where to write the config (default "+config.ConfigPath()+")")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
