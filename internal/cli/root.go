// SPDX-License-Identifier: MIT

// Package cli wires the lvmigest command tree.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmigest/internal/config"
	"github.com/katalvlaran/lvmigest/internal/logger"
)

// state is shared by the subcommands of one invocation.
type state struct {
	configPath string
	debug      bool
	cfg        config.Config
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	st := &state{}

	cmd := &cobra.Command{
		Use:          "lvmigest",
		Short:        "lvmigest: migration age schedules and OD flow lumping",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load(st.configPath)
			if err != nil {
				return err
			}
			if c.Flags().Changed("debug") {
				cfg.Debug = st.debug
			}
			st.cfg = cfg

			logger.Setup(logger.Config{Output: c.ErrOrStderr(), Debug: cfg.Debug})
			logger.L().Debug("config.loaded", "path", st.configPath, "command", c.Name())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&st.configPath, "config", "", "YAML config file (optional)")
	cmd.PersistentFlags().BoolVar(&st.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(scheduleCmd(st))
	cmd.AddCommand(lumpCmd(st))
	cmd.AddCommand(regionsCmd())
	return cmd
}

// openInput returns path's contents, or the command's stdin for "" and "-".
func openInput(c *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(c.InOrStdin()), nil
	}
	return os.Open(path)
}
