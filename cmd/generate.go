package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"image-gallery/pkg/services"
)

var showExcluded bool

// newGenerateCmd creates a new command for generating artifacts only
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate full and thumbnail artifacts",
		Long: `Generate a recompressed full copy and a thumbnail for every image under images/<category>/.
Artifacts get random names and accumulate across runs unless --clean is given.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			generateArtifacts()
		},
	}

	cmd.Flags().BoolVarP(&showExcluded, "show-excluded", "x", false, "List files that were skipped and why")

	return cmd
}

// generateArtifacts runs the generator and prints a summary
func generateArtifacts() {
	manifest, err := services.Generate()
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	for _, category := range manifest.Categories {
		fmt.Printf("Category: %s\n", category.Name)
		for _, pair := range category.Pairs {
			fmt.Printf("  %s -> %s (%dx%d, thumbnail %dx%d)\n", pair.Source, pair.Full.FileName(),
				pair.Full.Width, pair.Full.Height, pair.Thumbnail.Width, pair.Thumbnail.Height)
		}
	}

	if showExcluded {
		fmt.Println("\nExcluded:")
		for _, excluded := range manifest.Excluded {
			fmt.Printf("  %s (%s)\n", excluded.Path, excluded.Reason)
		}
	}

	printSummary(manifest)
}
