package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name or id>",
	Aliases: []string{"rm"},
	Short:   "Remove a manga from your library",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")

		ctx := context.Background()
		d, err := openDeps(ctx)
		cobra.CheckErr(err)
		defer d.Close()

		manga, err := d.resolve(args)
		cobra.CheckErr(err)

		if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete '%s'?", manga.Name)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return
		}

		cobra.CheckErr(d.lib.Delete(ctx, manga.ID))
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted '%s'\n", manga.Name)
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// confirm asks a y/N question. Anything but y or yes declines.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
