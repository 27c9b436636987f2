package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/config"
)

// NewConfigCmd creates the config command and its init subcommand.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a commented sample config file",
		Long: `Write a sample config file to path. Without a path the file goes to
--config, $` + config.EnvConfigPath + ` or the user config directory, in that order.
An existing file is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, args, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string, force bool) error {
	var target string
	switch {
	case len(args) == 1:
		target = args[0]
	case configPath(cmd) != "":
		target = configPath(cmd)
	case os.Getenv(config.EnvConfigPath) != "":
		target = os.Getenv(config.EnvConfigPath)
	default:
		p, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		target = p
	}

	target, err := config.ExpandPath(target)
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", target, err)
		}
	}

	if err := config.CreateSample(target); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample config to %s\n", target)
	return nil
}
