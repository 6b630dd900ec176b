package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"image-gallery/pkg/services"
)

// newRenderCmd creates a new command for rendering the page from existing artifacts
func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render index.html from the generated tree",
		Long:  `Render index.html from images/generated/ without generating new artifacts.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			initService()

			index, err := services.Render()
			if err != nil {
				log.Fatalf("Render failed: %v", err)
			}
			fmt.Printf("Rendered %d categories\n", len(index.Categories))
		},
	}
}
