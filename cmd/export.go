package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"image-gallery/pkg/models"
	"image-gallery/pkg/services"
)

// newExportCmd creates a new command for exporting gallery data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export gallery data",
		Long:  `Export the assembled gallery data in the specified format. Supported formats: json, yaml.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initService()

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}

			index, err := services.GetIndex()
			if err != nil {
				log.Fatalf("Failed to assemble galleries: %v", err)
			}
			if err := exportData(os.Stdout, format, index); err != nil {
				fmt.Printf("Error: %v\n", err)
				fmt.Println("Supported formats: json, yaml")
				os.Exit(1)
			}
		},
	}
}

// exportData writes the index to w in the specified format
func exportData(w io.Writer, format string, index models.Index) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(index, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling data: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(index); err != nil {
			return fmt.Errorf("error marshaling data: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported export format: %s", format)
}
