package engine

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ArtifactStore maps generated filenames to image files in one flat directory
type ArtifactStore struct {
	Dir string
}

// NewArtifactStore makes sure the output directory exists
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := ensureDirectory("output", dir); err != nil {
		return nil, &StorageError{Op: "mkdir", Path: dir, Err: err}
	}
	return &ArtifactStore{Dir: dir}, nil
}

// validName rejects anything that is not a plain file name inside the store
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

// SaveJPEG encodes img as a JPEG artifact called name
func (s *ArtifactStore) SaveJPEG(name string, img image.Image, quality int) error {
	if !validName(name) {
		return &StorageError{Op: "save", Path: name, Err: os.ErrInvalid}
	}
	path := filepath.Join(s.Dir, name)
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Path returns the location of an existing artifact, or ErrNotFound
func (s *ArtifactStore) Path(name string) (string, error) {
	if !validName(name) {
		return "", ErrNotFound
	}
	path := filepath.Join(s.Dir, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrNotFound
	}
	return path, nil
}

// Remove deletes artifacts, ignoring ones that do not exist
func (s *ArtifactStore) Remove(names ...string) {
	for _, name := range names {
		if !validName(name) {
			continue
		}
		path := filepath.Join(s.Dir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			Logger.Warn("Unable to remove artifact", "path", path, "error", err)
		}
	}
}
