package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"image-gallery/pkg/services"
)

var publishTimeout time.Duration

// newPublishCmd creates a new command for uploading the gallery to Cloud Storage
func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the gallery to a Cloud Storage bucket",
		Long: `Upload index.html and every generated artifact to the bucket named by BUCKET_NAME.
Artifacts already in the bucket are skipped.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			initService()

			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()

			result, err := services.PublishSite(ctx)
			if err != nil {
				log.Fatalf("Publish failed: %v", err)
			}
			fmt.Printf("Uploaded %d file(s), skipped %d already published\n", result.Uploaded, result.Skipped)
		},
	}

	cmd.Flags().DurationVarP(&publishTimeout, "timeout", "t", 10*time.Minute, "Maximum time for the upload")

	return cmd
}
