package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"image-gallery/pkg/config"
	"image-gallery/pkg/services"
)

// Configuration flags
var (
	rootDir    string
	bucketName string
	portNumber string
	cleanRun   bool
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "image-gallery",
		Short: "Image Gallery builds a static photo gallery from a folder of images",
		Long: `Image Gallery converts images/<category>/ folders into anonymized full-size and
thumbnail copies under images/generated/ and renders index.html listing one gallery
per category. Run without a command to do both steps.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			runBuild()
		},
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "Set the ROOT_DIR holding images/ (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME used by publish (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT used by serve (overrides environment variable)")
	rootCmd.PersistentFlags().BoolVar(&cleanRun, "clean", false, "Remove images/generated before generating artifacts")

	// Add commands to root
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newShowCategoryCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPublishCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if rootDir != "" {
		os.Setenv("ROOT_DIR", rootDir)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	// Load configuration from environment variables (potentially set above)
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.Clean = cleanRun
	return cfg, nil
}

// initService loads configuration and initializes the services or exits
func initService() *config.Config {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	services.InitService(cfg)
	return cfg
}
