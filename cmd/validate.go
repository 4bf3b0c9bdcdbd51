package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema_root]",
	Short: "Validate a folder schema on disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}

		tree := cfg.Tree()
		fmt.Printf("Schema OK: %d nodes, %d project(s).\n", tree.Len(), len(tree.Roots()))
		if patterns := cfg.IgnorePatterns(); len(patterns) > 0 {
			fmt.Printf("Ignore patterns: %v\n", patterns)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
