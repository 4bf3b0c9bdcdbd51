package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vfxpipe/scaffold/internal/pathcache"
)

var cacheDBPath string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the entity path cache",
}

var cacheLookupCmd = &cobra.Command{
	Use:   "lookup [entity_type] [entity_id]",
	Short: "List the registered filesystem paths for an entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("entity id must be an integer: %w", err)
		}

		cache, err := pathcache.Open(cacheDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = cache.Close() }()

		paths, err := cache.PathsForEntity(args[0], id)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

var cacheReverseCmd = &cobra.Command{
	Use:   "reverse [root] [path]",
	Short: "Resolve a path under a storage root back to its entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := pathcache.Open(cacheDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = cache.Close() }()

		entry, err := cache.EntityForPath(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s %d (%s)\n", entry.EntityType, entry.EntityID, entry.EntityName)
		return nil
	},
}

func init() {
	cacheCmd.PersistentFlags().StringVarP(&cacheDBPath, "db", "d", "path_cache.db", "Path to the path cache database")
	cacheCmd.AddCommand(cacheLookupCmd)
	cacheCmd.AddCommand(cacheReverseCmd)
	rootCmd.AddCommand(cacheCmd)
}
