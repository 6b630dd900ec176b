package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-gallery/pkg/models"
)

// writeArtifacts fakes a generated category with one full/thumbnail file per name
func writeArtifacts(t *testing.T, generated, category string, names ...string) {
	t.Helper()
	mkdirs(t, filepath.Join(generated, category, "full"), filepath.Join(generated, category, "thumbnail"))
	for _, name := range names {
		writeFile(t, filepath.Join(generated, category, "full", name), []byte("full"))
		writeFile(t, filepath.Join(generated, category, "thumbnail", name), []byte("thumb"))
	}
}

func TestGalleryID(t *testing.T) {
	assert.Equal(t, "gallery-paris", GalleryID("Paris"))
	assert.Equal(t, "gallery-beach-trip", GalleryID("Beach Trip"))
	assert.Equal(t, GalleryID("Beach Trip"), GalleryID("beach-trip"))
}

func TestAssemble_OrdersCategoriesByName(t *testing.T) {
	generated := t.TempDir()
	writeArtifacts(t, generated, "Zurich", "c.jpg")
	writeArtifacts(t, generated, "Amsterdam", "a.png")
	writeArtifacts(t, generated, "Lisbon", "b.jpeg")

	index, err := NewAssembler(generated).Assemble()
	require.NoError(t, err)

	names := make([]string, 0, len(index.Categories))
	for _, c := range index.Categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Amsterdam", "Lisbon", "Zurich"}, names)
}

func TestAssemble_EntryURLs(t *testing.T) {
	generated := t.TempDir()
	writeArtifacts(t, generated, "Paris", "0b1e.jpg")

	index, err := NewAssembler(generated).Assemble()
	require.NoError(t, err)
	require.Len(t, index.Categories, 1)

	category := index.Categories[0]
	assert.Equal(t, "gallery-paris", category.Stub)
	assert.Equal(t, []models.GalleryEntry{{
		File:         "0b1e.jpg",
		FullURL:      "images/generated/Paris/full/0b1e.jpg",
		ThumbnailURL: "images/generated/Paris/thumbnail/0b1e.jpg",
	}}, category.Entries)
}

func TestAssemble_MissingThumbnailDirExcludesCategory(t *testing.T) {
	generated := t.TempDir()
	writeArtifacts(t, generated, "Paris", "a.jpg")
	writeFile(t, filepath.Join(generated, "Rome", "full", "b.jpg"), []byte("full"))

	index, err := NewAssembler(generated).Assemble()
	require.NoError(t, err)

	require.Len(t, index.Categories, 1)
	assert.Equal(t, "Paris", index.Categories[0].Name)
	assert.Contains(t, index.Excluded, models.Exclusion{
		Path:   filepath.Join(generated, "Rome"),
		Reason: models.ReasonMissingThumbnailDir,
	})

	page := NewPage(index)
	assert.NotContains(t, page.GalleryContent, "Rome")
	assert.NotContains(t, page.GalleryScript, "gallery-rome")
}

func TestAssemble_MissingFullDirExcludesCategory(t *testing.T) {
	generated := t.TempDir()
	writeFile(t, filepath.Join(generated, "Rome", "thumbnail", "b.jpg"), []byte("thumb"))

	index, err := NewAssembler(generated).Assemble()
	require.NoError(t, err)

	assert.Empty(t, index.Categories)
	assert.Contains(t, index.Excluded, models.Exclusion{
		Path:   filepath.Join(generated, "Rome"),
		Reason: models.ReasonMissingFullDir,
	})
}

func TestAssemble_SkipsStrayEntries(t *testing.T) {
	generated := t.TempDir()
	writeArtifacts(t, generated, "Paris", "a.jpg")
	writeFile(t, filepath.Join(generated, "stray.txt"), []byte("x"))
	writeFile(t, filepath.Join(generated, "Paris", "thumbnail", "notes.txt"), []byte("x"))
	mkdirs(t, filepath.Join(generated, "Paris", "thumbnail", "nested"))

	index, err := NewAssembler(generated).Assemble()
	require.NoError(t, err)

	require.Len(t, index.Categories, 1)
	assert.Len(t, index.Categories[0].Entries, 1)
	assert.Contains(t, index.Excluded, models.Exclusion{
		Path:   filepath.Join(generated, "stray.txt"),
		Reason: models.ReasonNotDirectory,
	})
	assert.Contains(t, index.Excluded, models.Exclusion{
		Path:   filepath.Join(generated, "Paris", "thumbnail", "notes.txt"),
		Reason: models.ReasonUnrecognizedExtension,
	})
}

func TestAssemble_DanglingThumbnailStillListed(t *testing.T) {
	generated := t.TempDir()
	writeArtifacts(t, generated, "Paris")
	writeFile(t, filepath.Join(generated, "Paris", "thumbnail", "orphan.png"), []byte("thumb"))

	index, err := NewAssembler(generated).Assemble()
	require.NoError(t, err)

	require.Len(t, index.Categories[0].Entries, 1)
	assert.Equal(t, "images/generated/Paris/full/orphan.png", index.Categories[0].Entries[0].FullURL)
}

func TestAssemble_EmptyCategoryKept(t *testing.T) {
	generated := t.TempDir()
	writeArtifacts(t, generated, "Empty")

	index, err := NewAssembler(generated).Assemble()
	require.NoError(t, err)
	require.Len(t, index.Categories, 1)

	content := GalleryContent(index.Categories)
	assert.Contains(t, content, `<h2 class="category-name">Empty</h2>`)
	assert.Contains(t, content, `<div id="gallery-empty">`)
	assert.NotContains(t, content, "<a href")
	assert.Contains(t, GalleryScript(index.Categories), "'gallery-empty'")
}

func TestAssemble_MissingGeneratedDir(t *testing.T) {
	_, err := NewAssembler(filepath.Join(t.TempDir(), "missing")).Assemble()
	assert.Error(t, err)
}

func TestGalleryContent_Block(t *testing.T) {
	categories := []models.Category{{
		Name: "Paris",
		Stub: "gallery-paris",
		Entries: []models.GalleryEntry{{
			File:         "x.jpg",
			FullURL:      "images/generated/Paris/full/x.jpg",
			ThumbnailURL: "images/generated/Paris/thumbnail/x.jpg",
		}},
	}}

	want := strings.Join([]string{
		`<div>`,
		`    <h2 class="category-name">Paris</h2>`,
		`    <div class="container">`,
		`        <div id="gallery-paris">`,
		`            <a href="images/generated/Paris/full/x.jpg">`,
		`                <img src="images/generated/Paris/thumbnail/x.jpg" />`,
		`            </a>`,
		`        </div>`,
		`    </div>`,
		`</div>`,
	}, "\n")
	assert.Equal(t, want, GalleryContent(categories))
}

func TestGalleryContent_EscapesNames(t *testing.T) {
	categories := []models.Category{{Name: "Tom & <Jerry>", Stub: GalleryID("Tom & <Jerry>")}}

	content := GalleryContent(categories)
	assert.Contains(t, content, "Tom &amp; &lt;Jerry&gt;")
	assert.NotContains(t, content, "<Jerry>")
}

func TestGalleryContent_CollidingIDs(t *testing.T) {
	categories := []models.Category{
		{Name: "Beach Trip", Stub: GalleryID("Beach Trip")},
		{Name: "beach-trip", Stub: GalleryID("beach-trip")},
	}

	assert.Equal(t, 2, strings.Count(GalleryContent(categories), `id="gallery-beach-trip"`))
	assert.Equal(t, 2, strings.Count(GalleryScript(categories), "'gallery-beach-trip'"))
}

func TestGalleryScript_Shape(t *testing.T) {
	categories := []models.Category{
		{Name: "Amsterdam", Stub: "gallery-amsterdam"},
		{Name: "O'Hare", Stub: GalleryID("O'Hare")},
	}

	want := strings.Join([]string{
		`<script>`,
		`    const galleryIds = [`,
		`        'gallery-amsterdam',`,
		`        'gallery-o\'hare'`,
		`    ];`,
		`    galleryIds.forEach(function(id) {`,
		`        lightGallery(document.getElementById(id), {`,
		`            thumbnail: true,`,
		`        });`,
		`    });`,
		`</script>`,
	}, "\n")
	assert.Equal(t, want, GalleryScript(categories))
}

func TestGalleryScript_NoCategories(t *testing.T) {
	script := GalleryScript(nil)
	assert.Contains(t, script, "const galleryIds = [\n    ];")
	assert.Empty(t, GalleryContent(nil))
}
