package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vfxpipe/scaffold/api"
	"github.com/vfxpipe/scaffold/internal/schema"
)

var showFiles bool

var kindColors = map[api.Kind]*color.Color{
	api.KindProject:       color.New(color.FgCyan, color.Bold),
	api.KindEntity:        color.New(color.FgGreen),
	api.KindListField:     color.New(color.FgYellow),
	api.KindUserWorkspace: color.New(color.FgMagenta),
	api.KindStep:          color.New(color.FgBlue),
	api.KindTask:          color.New(color.FgBlue),
	api.KindStatic:        color.New(color.Faint),
}

var showCmd = &cobra.Command{
	Use:   "show [schema_root]",
	Short: "Print the interpreted folder schema tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}

		tree := cfg.Tree()
		for _, root := range tree.Roots() {
			printNode(tree, root, 0)
		}
		return nil
	},
}

func printNode(t *schema.Tree, n *api.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	label := n.Kind.String()
	if n.Kind == api.KindEntity {
		label = fmt.Sprintf("%s:%s", label, n.EntityType)
	}
	fmt.Printf("%s%s  [%s]\n", indent, path.Base(n.ID), kindColors[n.Kind].Sprint(label))

	if showFiles {
		for _, f := range n.Files {
			fmt.Printf("%s  · %s\n", indent, filepath.Base(f))
		}
	}

	children, _ := t.Children(n.ID)
	for _, child := range children {
		printNode(t, child, depth+1)
	}
}

func init() {
	showCmd.Flags().BoolVarP(&showFiles, "files", "f", false, "Also list the payload files attached to each node")
	rootCmd.AddCommand(showCmd)
}
