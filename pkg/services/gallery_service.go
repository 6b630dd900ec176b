package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/patrickmn/go-cache"

	"image-gallery/pkg/config"
	"image-gallery/pkg/models"
)

// Service runs the gallery pipeline for one root directory
type Service struct {
	config     *config.Config
	indexCache *cache.Cache
	renderer   Renderer
	mu         sync.Mutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// NewService creates a Service for the given configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		config:     cfg,
		indexCache: cache.New(time.Minute, 5*time.Minute),
	}
}

// InitService initializes the service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = NewService(cfg)
	})
}

// Build generates artifacts and renders the gallery page
func Build() (models.Manifest, error) {
	return defaultService.Build()
}

// Generate runs only the artifact generator
func Generate() (models.Manifest, error) {
	return defaultService.Generate()
}

// Render assembles the output tree and writes the gallery page
func Render() (models.Index, error) {
	return defaultService.Render()
}

// GetIndex returns the assembled gallery index
func GetIndex() (models.Index, error) {
	return defaultService.GetIndexInternal()
}

// GetCategory returns one assembled category by name
func GetCategory(name string) (models.Category, error) {
	return defaultService.GetCategoryInternal(name)
}

// RenderPage returns the page built from the current output tree
func RenderPage() (models.Page, Renderer, error) {
	return defaultService.RenderPageInternal()
}

// PublishSite uploads the page and artifacts to the configured bucket
func PublishSite(ctx context.Context) (PublishResult, error) {
	return defaultService.Publish(ctx)
}

// Build runs the generator to completion and then renders the page from
// what it wrote.
func (s *Service) Build() (models.Manifest, error) {
	manifest, err := s.Generate()
	if err != nil {
		return manifest, err
	}
	if _, err := s.Render(); err != nil {
		return manifest, err
	}
	return manifest, nil
}

// Generate runs the artifact generator
func (s *Service) Generate() (models.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	generator := NewGenerator(s.config.ImagesDir(), s.config.GeneratedDir()).WithClean(s.config.Clean)
	manifest, err := generator.Run()
	s.indexCache.Flush()
	if err != nil {
		return manifest, fmt.Errorf("artifact generation failed: %w", err)
	}

	log.Printf("Generated %d image(s), %d failed", manifest.Processed, manifest.Failed)
	return manifest, nil
}

// Render assembles the output tree and writes the page file
func (s *Service) Render() (models.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := NewAssembler(s.config.GeneratedDir()).Assemble()
	if err != nil {
		return index, fmt.Errorf("gallery assembly failed: %w", err)
	}

	if err := WritePage(s.pageRenderer(), s.config.PageFile(), NewPage(index)); err != nil {
		return index, fmt.Errorf("failed to write %s: %w", s.config.PageFile(), err)
	}

	log.Printf("Final HTML generated at: %s", s.config.PageFile())
	return index, nil
}

// GetIndexInternal returns the assembled index, cached between calls
func (s *Service) GetIndexInternal() (models.Index, error) {
	if cached, found := s.indexCache.Get("index"); found {
		return cached.(models.Index), nil
	}

	index, err := NewAssembler(s.config.GeneratedDir()).Assemble()
	if err != nil {
		return index, err
	}

	s.indexCache.Set("index", index, cache.DefaultExpiration)
	return index, nil
}

// GetCategoryInternal returns one assembled category by name
func (s *Service) GetCategoryInternal(name string) (models.Category, error) {
	index, err := s.GetIndexInternal()
	if err != nil {
		return models.Category{}, err
	}
	for _, category := range index.Categories {
		if category.Name == name {
			return category, nil
		}
	}
	return models.Category{}, fmt.Errorf("category not found: %s", name)
}

// RenderPageInternal returns the page fragments and the renderer for the
// current output tree without writing the page file.
func (s *Service) RenderPageInternal() (models.Page, Renderer, error) {
	index, err := s.GetIndexInternal()
	if err != nil {
		return models.Page{}, nil, err
	}
	return NewPage(index), s.pageRenderer(), nil
}

// pageRenderer picks up template.pug from the root directory when present
func (s *Service) pageRenderer() Renderer {
	if s.renderer != nil {
		return s.renderer
	}
	return NewPugRenderer(s.config.TemplateFile())
}

// Publish uploads the page and artifacts to the configured bucket
func (s *Service) Publish(ctx context.Context) (PublishResult, error) {
	if s.config.BucketName == "" {
		return PublishResult{}, ErrNoBucket
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return PublishResult{}, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	return Publish(ctx, NewGCSStore(client.Bucket(s.config.BucketName)), s.config.RootDir)
}
