package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"image-gallery/pkg/services"
)

// newShowCategoryCmd creates a new command for showing category details
func newShowCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-category [name]",
		Short: "Show images in a specific category",
		Long:  `Show the full-size and thumbnail links of every image in a category identified by its folder name.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			showCategory(args[0])
		},
	}
}

// showCategory displays details about a specific category
func showCategory(name string) {
	category, err := services.GetCategory(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Category: %s\n", category.Name)
	fmt.Printf("ID: %s\n", category.Stub)
	fmt.Printf("Images: %d\n", len(category.Entries))
	fmt.Println("================")

	for i, entry := range category.Entries {
		fmt.Printf("%d. %s\n", i+1, entry.File)
		fmt.Printf("   Full: %s\n", entry.FullURL)
		fmt.Printf("   Thumbnail: %s\n", entry.ThumbnailURL)
		fmt.Println()
	}
}
