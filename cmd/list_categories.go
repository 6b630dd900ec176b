package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"image-gallery/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all gallery categories",
		Long:  `List all categories found in the generated tree with the number of images in each.`,
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			listCategories()
		},
	}
}

// listCategories displays all categories and their entry counts
func listCategories() {
	index, err := services.GetIndex()
	if err != nil {
		log.Fatalf("Failed to assemble galleries: %v", err)
	}

	fmt.Println("Gallery Categories:")
	fmt.Println("===================")

	for _, category := range index.Categories {
		fmt.Printf("%s\n", category.Name)
		fmt.Printf("  ID: %s\n", category.Stub)
		fmt.Printf("  Images: %d\n", len(category.Entries))
		fmt.Println()
	}

	for _, excluded := range index.Excluded {
		fmt.Printf("Skipped: %s (%s)\n", excluded.Path, excluded.Reason)
	}

	fmt.Printf("Total: %d categories\n", len(index.Categories))
}
