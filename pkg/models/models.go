package models

// ArtifactKind identifies one of the two derived images produced per source image
type ArtifactKind string

const (
	Full      ArtifactKind = "full"
	Thumbnail ArtifactKind = "thumbnail"
)

// Dir returns the output subdirectory name for the artifact kind
func (k ArtifactKind) Dir() string {
	return string(k)
}

// ExclusionReason explains why a directory or file was left out of a run
type ExclusionReason string

const (
	ReasonNotDirectory          ExclusionReason = "not-a-directory"
	ReasonReservedDirectory     ExclusionReason = "reserved-directory"
	ReasonMissingFullDir        ExclusionReason = "missing-full-dir"
	ReasonMissingThumbnailDir   ExclusionReason = "missing-thumbnail-dir"
	ReasonUnrecognizedExtension ExclusionReason = "unrecognized-extension"
	ReasonDecodeFailed          ExclusionReason = "decode-failed"
	ReasonEncodeFailed          ExclusionReason = "encode-failed"
)

// Exclusion records a path that did not make it into the output
type Exclusion struct {
	Path   string          `json:"path" yaml:"path"`
	Reason ExclusionReason `json:"reason" yaml:"reason"`
}

// SourceImage is one recognized image file inside a category folder
type SourceImage struct {
	Category string
	Path     string
	Ext      string
}

// Artifact is a derived image written to the output tree
type Artifact struct {
	Kind   ArtifactKind `json:"kind" yaml:"kind"`
	Token  string       `json:"token" yaml:"token"`
	Ext    string       `json:"ext" yaml:"ext"`
	Path   string       `json:"path" yaml:"path"`
	Width  int          `json:"width" yaml:"width"`
	Height int          `json:"height" yaml:"height"`
}

// FileName returns the token and extension joined as a file name
func (a Artifact) FileName() string {
	return a.Token + a.Ext
}

// ArtifactPair holds the full and thumbnail artifacts generated from one source image
type ArtifactPair struct {
	Source    string   `json:"source" yaml:"source"`
	Full      Artifact `json:"full" yaml:"full"`
	Thumbnail Artifact `json:"thumbnail" yaml:"thumbnail"`
}

// ManifestCategory lists the pairs generated for a category during one run
type ManifestCategory struct {
	Name  string         `json:"name" yaml:"name"`
	Pairs []ArtifactPair `json:"pairs" yaml:"pairs"`
}

// Manifest summarizes one artifact generation run
type Manifest struct {
	Categories []ManifestCategory `json:"categories" yaml:"categories"`
	Excluded   []Exclusion        `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	Processed  int                `json:"processed" yaml:"processed"`
	Failed     int                `json:"failed" yaml:"failed"`
}

// GalleryEntry pairs a thumbnail with its full-size sibling, both as relative URLs
type GalleryEntry struct {
	File         string `json:"file" yaml:"file"`
	FullURL      string `json:"fullUrl" yaml:"fullUrl"`
	ThumbnailURL string `json:"thumbnailUrl" yaml:"thumbnailUrl"`
}

// Category represents one gallery block on the page
type Category struct {
	Name    string         `json:"name" yaml:"name"`
	Stub    string         `json:"stub" yaml:"stub"`
	Entries []GalleryEntry `json:"entries" yaml:"entries"`
}

// Index represents the assembled gallery data
type Index struct {
	Categories []Category  `json:"categories" yaml:"categories"`
	Excluded   []Exclusion `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// Page holds the two named fragments handed to the page template
type Page struct {
	GalleryContent string
	GalleryScript  string
}
