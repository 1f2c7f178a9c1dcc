package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export your library to a JSON backup",
	Long:  "Write every saved manga to a JSON file (default: the configured backup path)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) > 0 {
			path = args[0]
		}

		ctx := context.Background()
		d, err := openDeps(ctx)
		cobra.CheckErr(err)
		defer d.Close()

		written, err := d.lib.Export(ctx, path)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}
		fmt.Printf("💾 Exported %d manga to %s\n", len(d.lib.Mangas()), written)
	},
}

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Replace your library with a JSON backup",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) > 0 {
			path = args[0]
		}

		ctx := context.Background()
		d, err := openDeps(ctx)
		cobra.CheckErr(err)
		defer d.Close()

		n, err := d.lib.Import(ctx, path)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("import failed: %w", err))
		}
		fmt.Printf("📥 Imported %d manga\n", n)
	},
}
