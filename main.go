package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"image-gallery/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
