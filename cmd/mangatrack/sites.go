package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/mangatrack/pkg/config"
	"github.com/kerbaras/mangatrack/pkg/integrations"
	"github.com/spf13/cobra"
)

var sitesCmd = &cobra.Command{
	Use:   "sites [name]",
	Short: "List or open your scan site bookmarks",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			printSites(cfg.Bookmarks)
			return
		}

		bm, ok := findBookmark(cfg.Bookmarks, strings.Join(args, " "))
		if !ok {
			cobra.CheckErr(fmt.Errorf("no bookmark named %q", strings.Join(args, " ")))
		}
		cobra.CheckErr(integrations.NewBrowserOpener().Open(bm.URL))
		fmt.Printf("🌐 Opened %s\n", bm.Name)
	},
}

func findBookmark(bookmarks []config.Bookmark, name string) (config.Bookmark, bool) {
	for _, bm := range bookmarks {
		if strings.EqualFold(bm.Name, strings.TrimSpace(name)) {
			return bm, true
		}
	}
	return config.Bookmark{}, false
}

func printSites(bookmarks []config.Bookmark) {
	if len(bookmarks) == 0 {
		fmt.Println("No bookmarks configured.")
		return
	}

	var (
		purple = lipgloss.Color("99")

		headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "Name", "URL")

	for i, bm := range bookmarks {
		t.Row(fmt.Sprintf("%d", i+1), truncateString(bm.Name, 30), bm.URL)
	}

	fmt.Println(t)
}
