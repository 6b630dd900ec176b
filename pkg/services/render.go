package services

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"

	"image-gallery/pkg/models"
	"image-gallery/views"
)

// Renderer combines the gallery fragments with a page shell
type Renderer interface {
	Execute(w io.Writer, page models.Page) error
}

// PugRenderer renders the page shell with github.com/eknkc/pug
type PugRenderer struct {
	templatePath string
}

// NewPugRenderer returns a renderer for the template at templatePath, or for
// the built-in shell when templatePath is empty.
func NewPugRenderer(templatePath string) *PugRenderer {
	return &PugRenderer{templatePath: templatePath}
}

func (r *PugRenderer) compile() (*template.Template, error) {
	if r.templatePath == "" {
		return pug.CompileString(views.Index, pug.Options{})
	}
	// CompileFile resolves names against Options.Dir, so includes stay
	// relative to the template itself.
	dir := compiler.FsDir(filepath.Dir(r.templatePath))
	return pug.CompileFile(filepath.Base(r.templatePath), pug.Options{Dir: dir})
}

// Execute writes the rendered page to w
func (r *PugRenderer) Execute(w io.Writer, page models.Page) error {
	tpl, err := r.compile()
	if err != nil {
		return fmt.Errorf("failed to compile template: %w", err)
	}
	if err := tpl.Execute(w, page); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// WritePage renders page and replaces the file at path with the result.
// The file is written to a temporary sibling first and renamed into place.
func WritePage(r Renderer, path string, page models.Page) error {
	var buf bytes.Buffer
	if err := r.Execute(&buf, page); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gallery-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	success = true
	return nil
}
