package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"image-gallery/pkg/config"
	"image-gallery/pkg/models"
)

// ImageError is a failure confined to a single source image. The generator
// logs it and moves on to the next image.
type ImageError struct {
	Path   string
	Reason models.ExclusionReason
	Err    error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// Generator turns the source image tree into full and thumbnail artifacts
type Generator struct {
	imagesDir    string
	generatedDir string
	clean        bool
	widths       []int
	codec        Codec
	tokens       *TokenSource
	pickWidth    func(n int) int
}

// NewGenerator creates a Generator reading from imagesDir and writing to generatedDir
func NewGenerator(imagesDir, generatedDir string) *Generator {
	return &Generator{
		imagesDir:    imagesDir,
		generatedDir: generatedDir,
		widths:       ThumbnailWidths,
		codec:        ImagingCodec{},
		tokens:       NewTokenSource(),
		pickWidth:    rand.Intn,
	}
}

// WithClean makes Run remove the output tree before generating
func (g *Generator) WithClean(clean bool) *Generator {
	g.clean = clean
	return g
}

// Run processes every recognized image of every category folder. Failures
// of a single image are logged and recorded in the manifest; failures to
// prepare or write the output tree abort the run.
func (g *Generator) Run() (models.Manifest, error) {
	var manifest models.Manifest

	if g.clean {
		if err := os.RemoveAll(g.generatedDir); err != nil {
			return manifest, fmt.Errorf("failed to clear output directory: %w", err)
		}
	}
	if err := os.MkdirAll(g.generatedDir, 0755); err != nil {
		return manifest, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(g.imagesDir)
	if err != nil {
		return manifest, fmt.Errorf("failed to list %s: %w", g.imagesDir, err)
	}

	for _, entry := range entries {
		folderPath := filepath.Join(g.imagesDir, entry.Name())

		if !entry.IsDir() {
			manifest.Excluded = append(manifest.Excluded, models.Exclusion{Path: folderPath, Reason: models.ReasonNotDirectory})
			continue
		}
		if strings.EqualFold(entry.Name(), config.GeneratedDirName) {
			manifest.Excluded = append(manifest.Excluded, models.Exclusion{Path: folderPath, Reason: models.ReasonReservedDirectory})
			continue
		}

		category, err := g.processCategory(entry.Name(), &manifest)
		if err != nil {
			return manifest, err
		}
		manifest.Categories = append(manifest.Categories, category)
	}

	return manifest, nil
}

func (g *Generator) processCategory(name string, manifest *models.Manifest) (models.ManifestCategory, error) {
	category := models.ManifestCategory{Name: name, Pairs: []models.ArtifactPair{}}

	folderPath := filepath.Join(g.imagesDir, name)
	targetDir := filepath.Join(g.generatedDir, name)
	fullDir := filepath.Join(targetDir, models.Full.Dir())
	thumbDir := filepath.Join(targetDir, models.Thumbnail.Dir())

	for _, dir := range []string{fullDir, thumbDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return category, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	files, err := os.ReadDir(folderPath)
	if err != nil {
		return category, fmt.Errorf("failed to list %s: %w", folderPath, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		path := filepath.Join(folderPath, file.Name())
		if !IsImageFile(file.Name()) {
			manifest.Excluded = append(manifest.Excluded, models.Exclusion{Path: path, Reason: models.ReasonUnrecognizedExtension})
			continue
		}

		src := models.SourceImage{
			Category: name,
			Path:     path,
			Ext:      strings.ToLower(filepath.Ext(file.Name())),
		}

		pair, err := g.processImage(src, fullDir, thumbDir)
		if err != nil {
			var imgErr *ImageError
			if errors.As(err, &imgErr) {
				log.Printf("Error processing %s: %v", src.Path, imgErr.Err)
				manifest.Excluded = append(manifest.Excluded, models.Exclusion{Path: src.Path, Reason: imgErr.Reason})
				manifest.Failed++
				continue
			}
			return category, err
		}

		if hasMetadata(src.Path) {
			log.Printf("Processed: %s -> %s (metadata stripped)", src.Path, pair.Full.FileName())
		} else {
			log.Printf("Processed: %s -> %s", src.Path, pair.Full.FileName())
		}
		category.Pairs = append(category.Pairs, pair)
		manifest.Processed++
	}

	return category, nil
}

// processImage encodes both artifacts in memory before writing either, so a
// failed encode never leaves half a pair on disk.
func (g *Generator) processImage(src models.SourceImage, fullDir, thumbDir string) (models.ArtifactPair, error) {
	img, err := g.codec.Decode(src.Path)
	if err != nil {
		return models.ArtifactPair{}, &ImageError{Path: src.Path, Reason: models.ReasonDecodeFailed, Err: err}
	}

	token := g.tokens.Next()
	bounds := img.Bounds()

	var fullBuf bytes.Buffer
	if err := g.codec.Encode(&fullBuf, img, src.Ext, FullJPEGQuality); err != nil {
		return models.ArtifactPair{}, &ImageError{Path: src.Path, Reason: models.ReasonEncodeFailed, Err: err}
	}

	width, height := ThumbnailSize(bounds.Dx(), bounds.Dy(), g.widths[g.pickWidth(len(g.widths))])
	thumb := g.codec.Resize(img, width, height)

	var thumbBuf bytes.Buffer
	if err := g.codec.Encode(&thumbBuf, thumb, src.Ext, ThumbnailJPEGQuality); err != nil {
		return models.ArtifactPair{}, &ImageError{Path: src.Path, Reason: models.ReasonEncodeFailed, Err: err}
	}

	pair := models.ArtifactPair{
		Source: src.Path,
		Full: models.Artifact{
			Kind:   models.Full,
			Token:  token,
			Ext:    src.Ext,
			Path:   filepath.Join(fullDir, token+src.Ext),
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
		Thumbnail: models.Artifact{
			Kind:   models.Thumbnail,
			Token:  token,
			Ext:    src.Ext,
			Path:   filepath.Join(thumbDir, token+src.Ext),
			Width:  width,
			Height: height,
		},
	}

	if err := os.WriteFile(pair.Full.Path, fullBuf.Bytes(), 0644); err != nil {
		return pair, fmt.Errorf("failed to write %s: %w", pair.Full.Path, err)
	}
	if err := os.WriteFile(pair.Thumbnail.Path, thumbBuf.Bytes(), 0644); err != nil {
		return pair, fmt.Errorf("failed to write %s: %w", pair.Thumbnail.Path, err)
	}

	return pair, nil
}
