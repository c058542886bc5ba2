package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/combikit/pkg/cache"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
)

// cacheCommand groups the result cache subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the result cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every cached result (file backend)",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return c.clearCache() },
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := c.cacheDir()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Show the configured backend",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return c.cacheInfo() },
		},
	)
	return cmd
}

func (c *CLI) clearCache() error {
	if b := c.Config.Cache.Backend; b != backendFile {
		return cerrors.New(cerrors.ErrCodeUnsupported, "cache clear needs the file backend, not %q", b)
	}
	dir, err := c.cacheDir()
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printInfo("Nothing cached yet")
		return nil
	}

	store, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	n, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}
	printSuccess("Removed %d cached results", n)
	printDetail("%s", dir)
	return nil
}

func (c *CLI) cacheInfo() error {
	cfg := c.Config.Cache
	printKeyValue("backend", cfg.Backend)
	switch cfg.Backend {
	case backendFile:
		dir, err := c.cacheDir()
		if err != nil {
			return err
		}
		printKeyValue("dir", dir)
	case backendRedis:
		printKeyValue("addr", cfg.RedisAddr)
		printKeyValue("db", fmt.Sprint(cfg.RedisDB))
	}
	printKeyValue("ttl", cfg.TTL.String())
	if c.noCache {
		printWarning("--no-cache is set; the backend is bypassed")
	}
	return nil
}

// configCommand groups "config init" and "config show".
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or print the configuration",
	}
	cmd.AddCommand(c.configInitCommand(), c.configShowCommand())
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			path, err := c.configTarget()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return cerrors.New(cerrors.ErrCodeInvalidState, "%s exists; pass --force to replace it", path)
			}
			if err := writeConfig(path, defaultConfig()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printSuccess("Config written")
			printFile(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing config file")
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.configTarget()
			if err != nil {
				return err
			}
			printKeyValue("file", path)
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c.Config)
		},
	}
}

// configTarget is the file named by --config, or the default location.
func (c *CLI) configTarget() (string, error) {
	if c.configFile != "" {
		return c.configFile, nil
	}
	return configPath()
}
