package cmd

import (
	"context"
	"os"

	"github.com/kerbaras/mangatrack/pkg/app"
	"github.com/kerbaras/mangatrack/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mangatrack",
	Short: "Keep track of the manga you read",
	Long: `Track your manga reading progress from the terminal.

Save a chapter URL for each manga you follow, let mangatrack probe for the next
chapter and open it in your browser when it is out.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		d, err := openDeps(context.Background())
		cobra.CheckErr(err)
		defer d.Close()

		a := app.NewApp(d.lib, d.opener, cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/mangatrack/config.yaml or ~/.mangatrack/config.yaml)")

	// Add all subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(sitesCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	loaded, err := config.Load(cfgFile)
	cobra.CheckErr(err)
	cfg = loaded
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
