package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/api"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/config"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the protection HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		log := logger.L()

		srv := api.New(cfg.Server.TempDir, cfg.Protection.DefaultLevel, log)
		server := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: srv.Handler(),
		}
		log.Infow("listening", "addr", cfg.Server.Addr, "temp_dir", cfg.Server.TempDir)
		return server.ListenAndServe()
	},
}
