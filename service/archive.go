// Package service holds logic that sits between the HTTP handlers
// and the storage/database layers
package service

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fstop/portfolio-api/model"
	"fstop/portfolio-api/storage"

	"go.uber.org/zap"
)

// ErrEmptyAlbum is returned before any byte is written when there are
// no photo records to archive, so callers can still send a clean
// not-found response instead of a zero-entry zip.
var ErrEmptyAlbum = errors.New("album has no photos")

// BuildAlbumZip streams a zip of the given photos into w. Photos
// whose backing file has gone missing are skipped rather than failing
// the whole archive. Entries are named after each photo's original
// file name, duplicates get a " (n)" suffix so no entry silently
// overwrites another. Returns the number of entries written.
//
// The archive is produced incrementally, nothing is buffered beyond
// the compressor's own window, so a disconnecting client just
// surfaces as a write error.
func BuildAlbumZip(w io.Writer, store *storage.Store, photos []model.Photo) (int, error) {
	if len(photos) == 0 {
		return 0, ErrEmptyAlbum
	}

	zw := zip.NewWriter(w)
	seen := make(map[string]int, len(photos))
	written := 0

	for _, p := range photos {
		phys, err := store.Resolve(p.FileURL)
		if err != nil {
			zap.L().Warn("Photo record has an unresolvable file URL",
				zap.String("photoID", p.ID),
				zap.String("fileURL", p.FileURL))
			continue
		}

		f, err := os.Open(phys)
		if err != nil {
			// Best effort: the archive still succeeds with
			// whatever is present
			zap.L().Debug("Skipping photo with missing file",
				zap.String("photoID", p.ID),
				zap.Error(err))
			continue
		}

		name := p.FileName
		if name == "" {
			name = filepath.Base(phys)
		}

		entry, err := zw.Create(entryName(seen, name))
		if err != nil {
			f.Close()
			zw.Close()
			return written, fmt.Errorf("failed to create zip entry, %w", err)
		}

		if _, err := io.Copy(entry, f); err != nil {
			f.Close()
			zw.Close()
			return written, fmt.Errorf("failed to write zip entry, %w", err)
		}

		f.Close()
		written++
	}

	return written, zw.Close()
}

// entryName disambiguates duplicate display names, "cat.jpg" seen a
// second time becomes "cat (1).jpg".
func entryName(seen map[string]int, name string) string {
	n := seen[name]
	seen[name]++

	if n == 0 {
		return name
	}

	ext := path.Ext(name)
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), n, ext)
}
