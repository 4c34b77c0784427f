// Package storage owns the mapping between the public URL of an
// uploaded photo and its physical location on disk. Nothing else in
// the app builds storage paths.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrNotManaged is returned by Resolve for URLs that don't point
// under the public storage prefix.
var ErrNotManaged = errors.New("url is not managed by this store")

// Store is a single directory tree of uploaded files, one
// subdirectory per album. It only computes paths and creates
// directories, file content never passes through it.
type Store struct {
	root   string // absolute path of the storage root
	prefix string // public URL prefix, e.g. /uploads
}

func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root, %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root, %w", err)
	}

	return &Store{
		root:   abs,
		prefix: "/" + filepath.Base(abs),
	}, nil
}

// Root is the absolute filesystem path of the storage tree.
func (s *Store) Root() string {
	return s.root
}

// Prefix is the public URL prefix the tree is served under.
func (s *Store) Prefix() string {
	return s.prefix
}

// Allocate picks a collision-free location for a new file in the
// given album, keeping the original name's extension. The album
// directory is created if it doesn't exist yet. Uniqueness holds
// under concurrent calls because the name is a fresh nanoid, there is
// no shared counter.
func (s *Store) Allocate(albumID, originalName string) (physical, public string, err error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate file name, %w", err)
	}

	name := id + path.Ext(originalName)

	dir := filepath.Join(s.root, albumID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create album directory, %w", err)
	}

	return filepath.Join(dir, name), path.Join(s.prefix, albumID, name), nil
}

// Resolve turns a public URL back into a physical path. This is
// purely syntactic, the file may not exist and callers must check
// before serving.
func (s *Store) Resolve(publicURL string) (string, error) {
	rel, ok := strings.CutPrefix(publicURL, s.prefix+"/")
	if !ok || rel == "" {
		return "", ErrNotManaged
	}

	for seg := range strings.SplitSeq(rel, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", ErrNotManaged
		}
	}

	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}
