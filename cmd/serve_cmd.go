package cmd

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"image-gallery/pkg/config"
	"image-gallery/pkg/handlers"
)

// newServeCmd creates a new command for previewing the gallery
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the preview web server",
		Long:  `Start a web server that renders the gallery page live from the generated tree.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := initService()
			serveWebsite(cfg)
		},
	}
}

// serveWebsite runs the web server to serve the gallery content
func serveWebsite(cfg *config.Config) {
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), handlers.NewRouter(cfg)); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
