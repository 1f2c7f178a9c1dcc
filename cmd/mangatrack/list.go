package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatrack/pkg/services"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all manga in your library",
	Long:  "Display all manga in your library in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		sortFlag, _ := cmd.Flags().GetString("sort")
		opt, err := services.ParseSortOption(sortFlag)
		cobra.CheckErr(err)

		d, err := openDeps(context.Background())
		cobra.CheckErr(err)
		defer d.Close()

		mangas := d.lib.Sorted(opt)
		if len(mangas) == 0 {
			fmt.Println("📚 No manga in library. Use 'mangatrack add' to start tracking one.")
			return
		}

		// Create table columns
		columns := []table.Column{
			{Title: "Name", Width: 32},
			{Title: "Last", Width: 6},
			{Title: "New", Width: 6},
			{Title: "Last read", Width: 13},
			{Title: "ID", Width: 36},
		}

		rows := []table.Row{}
		for _, manga := range mangas {
			newChapter := "-"
			if manga.HasNewChapter() {
				newChapter = *manga.NewChapter
			}
			lastRead := "-"
			if manga.LastChapterDate != nil {
				lastRead = services.FormattedDate(*manga.LastChapterDate)
			}

			rows = append(rows, table.Row{
				truncateString(manga.Name, 30),
				manga.LastChapter,
				newChapter,
				lastRead,
				manga.ID,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Library (%d manga, sorted by %s)\n\n", len(mangas), opt)
		fmt.Println(t.View())
	},
}

func init() {
	listCmd.Flags().StringP("sort", "s", "priority", "Sort order: priority, name or date")
}
