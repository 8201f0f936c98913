package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/capview/pkg/cache"
	"github.com/matzehuels/capview/pkg/config"
	"github.com/matzehuels/capview/pkg/errors"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the artifact cache",
		Long:  `Rendered artifacts are cached by train and options. These commands act on the file backend; a Redis cache is managed with Redis tooling.`,
	}
	cmd.AddCommand(
		c.cacheInfoCommand(),
		c.cachePathCommand(),
		c.cacheClearCommand(),
	)
	return cmd
}

func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the cache backend and how much it holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			cc := cfg.Cache
			ttl := cc.TTL
			if ttl == "" {
				ttl = "never"
			}
			printInfo("Backend %s", StyleHighlight.Render(cc.Backend))
			printDetail("Expires: %s", ttl)
			if cc.Prefix != "" {
				printDetail("Key prefix: %s", cc.Prefix)
			}

			switch cc.Backend {
			case config.BackendRedis:
				printDetail("Address: %s (db %d)", cc.RedisAddr, cc.RedisDB)
			case config.BackendFile:
				fc, err := c.fileCache(cc)
				if err != nil {
					return err
				}
				n, size, err := fc.Usage()
				if err != nil {
					return fmt.Errorf("scan cache: %w", err)
				}
				printDetail("Directory: %s", fc.Dir())
				printDetail("Entries: %d (%s)", n, humanize.IBytes(uint64(size)))
			}
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			dir, err := cacheDir(cfg.Cache)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact from the file cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if cfg.Cache.Backend == config.BackendRedis {
				return errors.New(errors.ErrCodeUnsupported, "cache clear does not flush redis; expire keys with prefix %q instead", cfg.Cache.Prefix)
			}
			fc, err := c.fileCache(cfg.Cache)
			if err != nil {
				return err
			}
			n, _, _ := fc.Usage()
			if err := fc.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess("Cleared %d cached artifacts", n)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// fileCache opens the file backend even when the configured backend is
// none, so a disabled cache can still be inspected and cleared.
func (c *CLI) fileCache(cc config.CacheConfig) (*cache.FileCache, error) {
	dir, err := cacheDir(cc)
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return fc, nil
}
