package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"image-gallery/pkg/models"
	"image-gallery/pkg/services"
)

// newBuildCmd creates a new command for running the whole pipeline
func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate artifacts and render the gallery page",
		Long:  `Generate full and thumbnail artifacts for every category, then render index.html from the generated tree.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			runBuild()
		},
	}
}

// runBuild generates artifacts, renders the page and prints a summary
func runBuild() {
	manifest, err := services.Build()
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}
	printSummary(manifest)
}

// printSummary prints the counts of one generation run
func printSummary(manifest models.Manifest) {
	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Categories: %d\n", len(manifest.Categories))
	fmt.Printf("  Images processed: %d\n", manifest.Processed)
	fmt.Printf("  Images failed: %d\n", manifest.Failed)
}
