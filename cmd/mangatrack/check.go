package cmd

import (
	"context"
	"fmt"

	"github.com/kerbaras/mangatrack/pkg/services"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [name or id]",
	Short: "Check for new chapters",
	Long:  "Probe the next chapter of every manga, or of a single one, and record the hits",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		d, err := openDeps(ctx)
		cobra.CheckErr(err)
		defer d.Close()

		var id string
		if len(args) > 0 {
			manga, err := d.resolve(args)
			cobra.CheckErr(err)
			id = manga.ID
		}

		// Listen for progress
		done := make(chan struct{})
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			progress := d.lib.Checker().GetProgressChannel()
			for {
				select {
				case p := <-progress:
					printProgress(p)
				case <-done:
					for {
						select {
						case p := <-progress:
							printProgress(p)
						default:
							return
						}
					}
				}
			}
		}()

		var report services.CheckReport
		if id != "" {
			report, err = d.lib.Check(ctx, id)
		} else {
			fmt.Printf("🔍 Checking %d manga...\n", len(d.lib.Mangas()))
			report = d.lib.CheckForUpdates(ctx)
		}
		close(done)
		<-finished
		cobra.CheckErr(err)

		fmt.Printf("\n✅ Checked %d, %d new chapter(s)", report.Checked, report.Found)
		if report.Skipped > 0 || report.Failed > 0 {
			fmt.Printf(", %d skipped, %d failed", report.Skipped, report.Failed)
		}
		fmt.Println()
		if report.Found > 0 {
			fmt.Println("💡 Use 'mangatrack open <name> --new' to read it.")
		}
	},
}

func printProgress(p services.CheckProgress) {
	switch p.Status {
	case "found":
		fmt.Printf("  🆕 %s: chapter %s is out\n", p.Name, p.Chapter)
	case "skipped":
		fmt.Printf("  ⚠️  %s: skipped (%v)\n", p.Name, p.Error)
	case "error":
		fmt.Printf("  ❌ %s: %v\n", p.Name, p.Error)
	}
}
