package cmd

import (
	"context"
	"fmt"

	"github.com/kerbaras/mangatrack/pkg/services"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <chapter-url> [last-chapter]",
	Short: "Add a manga to your library",
	Long: `Save a manga with the URL of the last chapter you read.

The URL must contain a /chapter/<n> segment for new chapters to be detected.
The last chapter defaults to 1 and is clamped to the chapter in the URL.`,
	Example: `  mangatrack add "One Piece" https://example.com/one-piece/chapter/1100 1100`,
	Args:    cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		in := services.AddInput{Name: args[0], URL: args[1]}
		if len(args) == 3 {
			in.LastChapter = args[2]
		}

		d, err := openDeps(context.Background())
		cobra.CheckErr(err)
		defer d.Close()

		manga, err := d.lib.Add(context.Background(), in)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to add manga: %w", err))
		}

		fmt.Printf("✅ Added '%s' at chapter %s (ID: %s)\n", manga.Name, manga.LastChapter, manga.ID)
		fmt.Println("💡 Run 'mangatrack check' to look for the next chapter.")
	},
}
