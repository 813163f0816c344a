package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gfakit/pkg/buildinfo"
	"github.com/matzehuels/gfakit/pkg/cache"
	"github.com/matzehuels/gfakit/pkg/graph/stats"
)

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/gfakit/).
func cacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache opens the report cache, falling back to a null cache when
// caching is off or the directory is unusable.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// infoKey identifies a report by the file's path, size and modification
// time and by the options that affect loading. ok is false for inputs
// that cannot be identified, such as standard input.
func (c *CLI) infoKey(path string) (key string, ok bool) {
	if path == "-" {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", false
	}
	return cache.Key("info", buildinfo.Resolved(), abs, fi.Size(), fi.ModTime().UnixNano(),
		c.Config.Validation.Level, c.Config.Validation.StrictOrdering), true
}

// cachedInfo returns the stored report for key.
func cachedInfo(ctx context.Context, store cache.Cache, key string) (stats.Info, bool) {
	data, hit, err := store.Get(ctx, key)
	if err != nil || !hit {
		return stats.Info{}, false
	}
	var info stats.Info
	if err := json.Unmarshal(data, &info); err != nil {
		return stats.Info{}, false
	}
	return info, true
}

// storeInfo saves a report. Write failures are logged and ignored.
func storeInfo(ctx context.Context, store cache.Cache, key string, info stats.Info) {
	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := store.Set(ctx, key, data, 0); err != nil {
		loggerFromContext(ctx).Debug("cache write failed", "err", err)
	}
}

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the statistics report cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			w := cmd.OutOrStdout()
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo(w, "Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess(w, "Cache cleared")
			printDetail(w, "Directory: %s", dir)
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
