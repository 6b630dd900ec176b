package services

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Encoding policy
const (
	FullJPEGQuality      = 100
	ThumbnailJPEGQuality = 85
)

// ThumbnailWidths is the set of widths a thumbnail width is picked from
var ThumbnailWidths = []int{250}

// ErrUnsupportedFormat is returned when asked to encode an extension outside the recognized set
var ErrUnsupportedFormat = errors.New("unsupported image format")

// IsImageFile reports whether the file name carries a recognized image extension
func IsImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Codec decodes, resizes and encodes images
type Codec interface {
	Decode(path string) (image.Image, error)
	Resize(img image.Image, width, height int) image.Image
	Encode(w io.Writer, img image.Image, ext string, jpegQuality int) error
}

// ImagingCodec implements Codec with github.com/disintegration/imaging
type ImagingCodec struct{}

// Decode opens and decodes the image at path
func (ImagingCodec) Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img to exactly width x height using Lanczos resampling
func (ImagingCodec) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Encode writes img in the format named by ext. JPEG output is always
// three-channel RGB with any alpha dropped; PNG keeps the decoded layout.
func (ImagingCodec) Encode(w io.Writer, img image.Image, ext string, jpegQuality int) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return imaging.Encode(w, flattenRGB(img), imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	case ".png":
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// flattenRGB drops the alpha channel without compositing, so every pixel
// keeps its straight color values and becomes opaque.
func flattenRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// ThumbnailSize returns the target size for a thumbnail of the given width,
// preserving the aspect ratio of a width x height source. The height is
// rounded down and never below one pixel.
func ThumbnailSize(width, height, targetWidth int) (int, int) {
	if width <= 0 {
		return targetWidth, 1
	}
	h := height * targetWidth / width
	if h < 1 {
		h = 1
	}
	return targetWidth, h
}

// hasMetadata reports whether the file carries an EXIF block
func hasMetadata(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	_, err = exif.Decode(f)
	return err == nil
}
