package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/vfxpipe/scaffold/internal/schema"
)

var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Scaffold: folder schema tooling for production pipelines",
	Long: `Scaffold interprets a declarative on-disk folder schema (directory
tree plus .yml sidecar metadata) into a typed node tree, so pipeline tooling
knows where any tracked entity's files should live.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig interprets the schema rooted at arg on the host filesystem.
func loadConfig(arg string) (*schema.Config, error) {
	root, err := filepath.Abs(arg)
	if err != nil {
		return nil, fmt.Errorf("resolve schema root: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("stat schema root: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("schema root %s is not a directory", root)
	}
	return schema.Load(osfs.New(string(filepath.Separator)), root)
}
