package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/kerbaras/mangatrack/pkg/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the library over HTTP",
	Long: `Expose the library as a JSON API with Prometheus metrics at /metrics.

With --interval (or server.checkInterval) the server also checks for new
chapters periodically.`,
	Run: func(cmd *cobra.Command, args []string) {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if cmd.Flags().Changed("interval") {
			cfg.Server.CheckInterval, _ = cmd.Flags().GetDuration("interval")
		}
		if debug, _ := cmd.Flags().GetBool("debug"); !debug {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := openDeps(ctx)
		cobra.CheckErr(err)
		defer d.Close()

		srv := server.New(d.lib, server.Options{
			Addr:          cfg.Server.Addr,
			CheckInterval: cfg.Server.CheckInterval,
			Gatherer:      d.registry,
		})

		fmt.Printf("🚀 Serving %d manga on %s\n", len(d.lib.Mangas()), cfg.Server.Addr)
		if err := srv.Run(ctx); err != nil {
			cobra.CheckErr(fmt.Errorf("server failed: %w", err))
		}
		fmt.Println("👋 Server stopped")
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().Duration("interval", 0, "Check for new chapters every interval (0 disables)")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
}
