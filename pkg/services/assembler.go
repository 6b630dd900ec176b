package services

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"image-gallery/pkg/models"
)

// GeneratedURLPrefix is the page-relative URL of the output tree
const GeneratedURLPrefix = "images/generated"

// GalleryID returns the DOM identifier of a category's gallery block.
// Names that differ only in case or in spaces versus hyphens collide.
func GalleryID(name string) string {
	return "gallery-" + strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// Assembler builds the gallery description from the generator's output tree
type Assembler struct {
	generatedDir string
	urlPrefix    string
}

// NewAssembler creates an Assembler reading generatedDir
func NewAssembler(generatedDir string) *Assembler {
	return &Assembler{
		generatedDir: generatedDir,
		urlPrefix:    GeneratedURLPrefix,
	}
}

// Assemble lists category folders in name order and includes each one that
// has both a full and a thumbnail directory.
func (a *Assembler) Assemble() (models.Index, error) {
	index := models.Index{Categories: []models.Category{}}

	entries, err := os.ReadDir(a.generatedDir)
	if err != nil {
		return index, fmt.Errorf("failed to list %s: %w", a.generatedDir, err)
	}

	for _, entry := range entries {
		folderPath := filepath.Join(a.generatedDir, entry.Name())
		if !entry.IsDir() {
			index.Excluded = append(index.Excluded, models.Exclusion{Path: folderPath, Reason: models.ReasonNotDirectory})
			continue
		}

		if !isDir(filepath.Join(folderPath, models.Full.Dir())) {
			index.Excluded = append(index.Excluded, models.Exclusion{Path: folderPath, Reason: models.ReasonMissingFullDir})
			continue
		}
		thumbDir := filepath.Join(folderPath, models.Thumbnail.Dir())
		if !isDir(thumbDir) {
			index.Excluded = append(index.Excluded, models.Exclusion{Path: folderPath, Reason: models.ReasonMissingThumbnailDir})
			continue
		}

		files, err := os.ReadDir(thumbDir)
		if err != nil {
			return index, fmt.Errorf("failed to list %s: %w", thumbDir, err)
		}

		category := models.Category{
			Name:    entry.Name(),
			Stub:    GalleryID(entry.Name()),
			Entries: []models.GalleryEntry{},
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if !IsImageFile(file.Name()) {
				index.Excluded = append(index.Excluded, models.Exclusion{
					Path:   filepath.Join(thumbDir, file.Name()),
					Reason: models.ReasonUnrecognizedExtension,
				})
				continue
			}
			category.Entries = append(category.Entries, a.entry(entry.Name(), file.Name()))
		}

		index.Categories = append(index.Categories, category)
	}

	return index, nil
}

// entry builds the link pair for one thumbnail; the full sibling is assumed
// to share the file name and is not checked.
func (a *Assembler) entry(category, file string) models.GalleryEntry {
	return models.GalleryEntry{
		File:         file,
		FullURL:      fmt.Sprintf("%s/%s/%s/%s", a.urlPrefix, category, models.Full.Dir(), file),
		ThumbnailURL: fmt.Sprintf("%s/%s/%s/%s", a.urlPrefix, category, models.Thumbnail.Dir(), file),
	}
}

// GalleryContent renders one block per category
func GalleryContent(categories []models.Category) string {
	blocks := make([]string, 0, len(categories))
	for _, category := range categories {
		var b strings.Builder
		b.WriteString("<div>\n")
		fmt.Fprintf(&b, "    <h2 class=\"category-name\">%s</h2>\n", html.EscapeString(category.Name))
		b.WriteString("    <div class=\"container\">\n")
		fmt.Fprintf(&b, "        <div id=\"%s\">\n", html.EscapeString(category.Stub))
		for _, e := range category.Entries {
			fmt.Fprintf(&b, "            <a href=\"%s\">\n", html.EscapeString(e.FullURL))
			fmt.Fprintf(&b, "                <img src=\"%s\" />\n", html.EscapeString(e.ThumbnailURL))
			b.WriteString("            </a>\n")
		}
		b.WriteString("        </div>\n")
		b.WriteString("    </div>\n")
		b.WriteString("</div>")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// GalleryScript renders the script that initializes a lightbox on every gallery block
func GalleryScript(categories []models.Category) string {
	lines := []string{
		"<script>",
		"    const galleryIds = [",
	}
	for i, category := range categories {
		comma := ","
		if i == len(categories)-1 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("        '%s'%s", jsString(category.Stub), comma))
	}
	lines = append(lines,
		"    ];",
		"    galleryIds.forEach(function(id) {",
		"        lightGallery(document.getElementById(id), {",
		"            thumbnail: true,",
		"        });",
		"    });",
		"</script>",
	)
	return strings.Join(lines, "\n")
}

// NewPage builds the two render variables from an assembled index
func NewPage(index models.Index) models.Page {
	return models.Page{
		GalleryContent: GalleryContent(index.Categories),
		GalleryScript:  GalleryScript(index.Categories),
	}
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "<", `\x3c`, ">", `\x3e`)

func jsString(s string) string {
	return jsEscaper.Replace(s)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
