package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Directory and file names of the gallery layout
const (
	ImagesDirName    = "images"
	GeneratedDirName = "generated"
	PageFileName     = "index.html"
	TemplateFileName = "template.pug"
)

// Config holds all configuration for the application
type Config struct {
	RootDir    string
	BucketName string
	Port       string
	Clean      bool
}

// ErrRootDirNotFound is returned when ROOT_DIR does not point at a directory
var ErrRootDirNotFound = errors.New("root directory not found")

var portPattern = regexp.MustCompile(`^[0-9]+$`)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	rootDir := os.Getenv("ROOT_DIR")
	if rootDir == "" {
		rootDir = "."
	}

	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootDirNotFound, abs)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		RootDir:    abs,
		BucketName: os.Getenv("BUCKET_NAME"),
		Port:       port,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RootDir, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Match(portPattern)),
	)
}

// ImagesDir returns the directory holding one subdirectory per category
func (c *Config) ImagesDir() string {
	return filepath.Join(c.RootDir, ImagesDirName)
}

// GeneratedDir returns the output root of the artifact generator
func (c *Config) GeneratedDir() string {
	return filepath.Join(c.ImagesDir(), GeneratedDirName)
}

// PageFile returns the path of the rendered gallery page
func (c *Config) PageFile() string {
	return filepath.Join(c.RootDir, PageFileName)
}

// TemplateFile returns the page shell template in the root directory, or ""
// when the built-in shell should be used.
func (c *Config) TemplateFile() string {
	path := filepath.Join(c.RootDir, TemplateFileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Gallery URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/feed\n", c.Port)
}
