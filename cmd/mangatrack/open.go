package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <name or id>",
	Short: "Open a manga in your browser",
	Long: `Open the last chapter you read, or with --new the detected new chapter.

Opening the new chapter marks it as read and checks for the one after it.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		openNew, _ := cmd.Flags().GetBool("new")

		ctx := context.Background()
		d, err := openDeps(ctx)
		cobra.CheckErr(err)
		defer d.Close()

		manga, err := d.resolve(args)
		cobra.CheckErr(err)

		if !openNew {
			cobra.CheckErr(d.lib.OpenLastRead(manga.ID))
			fmt.Printf("📖 Opened '%s' chapter %s\n", manga.Name, manga.LastChapter)
			return
		}

		url, err := d.lib.OpenNewChapter(ctx, manga.ID)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to open new chapter: %w", err))
		}
		fmt.Printf("📖 Opened %s\n", url)

		updated, err := d.lib.Find(manga.ID)
		cobra.CheckErr(err)
		if updated.HasNewChapter() {
			fmt.Printf("🆕 Chapter %s is already out too\n", *updated.NewChapter)
		}
	},
}

func init() {
	openCmd.Flags().BoolP("new", "n", false, "Open the new chapter and mark it as read")
}
