package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"
)

var queryMetaPath string

var queryCmd = &cobra.Command{
	Use:   "query [schema_root] [entity_type]",
	Short: "List the schema locations registered for an entity type",
	Long: `Query prints every schema folder bound to the given entity type
(project roots live under the reserved type "Project"). With --meta, a
JSONPath expression is evaluated against each node's sidecar metadata and the
results are printed alongside the path.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}

		nodes := cfg.NodesForType(args[1])

		var expr jp.Expr
		if queryMetaPath != "" {
			expr, err = jp.ParseString(queryMetaPath)
			if err != nil {
				return fmt.Errorf("invalid jsonpath %q: %w", queryMetaPath, err)
			}
		}

		for _, n := range nodes {
			if expr == nil {
				fmt.Println(n.Path)
				continue
			}
			fmt.Printf("%s\t%v\n", n.Path, expr.Get(map[string]any(n.Meta)))
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryMetaPath, "meta", "m", "", "JSONPath to evaluate against each node's metadata")
	rootCmd.AddCommand(queryCmd)
}
