package service

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fstop/portfolio-api/model"
	"fstop/portfolio-api/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addPhoto writes content under a fresh storage location and returns
// the matching record.
func addPhoto(t *testing.T, s *storage.Store, albumID, name, content string) model.Photo {
	t.Helper()

	phys, public, err := s.Allocate(albumID, name)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(phys, []byte(content), 0o644))

	return model.Photo{
		ID:       name + "-id",
		AlbumID:  albumID,
		FileURL:  public,
		FileName: name,
	}
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	s, err := storage.New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return s
}

func readZip(t *testing.T, buf *bytes.Buffer) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		var b bytes.Buffer
		_, err = b.ReadFrom(rc)
		rc.Close()
		require.NoError(t, err)
		out[f.Name] = b.String()
	}
	return out
}

func TestBuildAlbumZip(t *testing.T) {
	s := newTestStore(t)

	photos := []model.Photo{
		addPhoto(t, s, "a1", "one.jpg", "first"),
		addPhoto(t, s, "a1", "two.jpg", "second"),
	}

	var buf bytes.Buffer
	written, err := BuildAlbumZip(&buf, s, photos)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	entries := readZip(t, &buf)
	assert.Equal(t, map[string]string{
		"one.jpg": "first",
		"two.jpg": "second",
	}, entries)
}

func TestBuildAlbumZipSkipsMissingFiles(t *testing.T) {
	s := newTestStore(t)

	photos := []model.Photo{
		addPhoto(t, s, "a1", "one.jpg", "first"),
		addPhoto(t, s, "a1", "two.jpg", "second"),
		addPhoto(t, s, "a1", "three.jpg", "third"),
	}

	// Pull one backing file out from under the records
	phys, err := s.Resolve(photos[1].FileURL)
	require.NoError(t, err)
	require.NoError(t, os.Remove(phys))

	var buf bytes.Buffer
	written, err := BuildAlbumZip(&buf, s, photos)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	entries := readZip(t, &buf)
	assert.Len(t, entries, 2)
	assert.Contains(t, entries, "one.jpg")
	assert.Contains(t, entries, "three.jpg")
}

func TestBuildAlbumZipEmpty(t *testing.T) {
	s := newTestStore(t)

	var buf bytes.Buffer
	written, err := BuildAlbumZip(&buf, s, nil)
	assert.ErrorIs(t, err, ErrEmptyAlbum)
	assert.Zero(t, written)
	// Not a single byte was sent before the error
	assert.Zero(t, buf.Len())
}

func TestBuildAlbumZipDuplicateNames(t *testing.T) {
	s := newTestStore(t)

	photos := []model.Photo{
		addPhoto(t, s, "a1", "cat.jpg", "first"),
		addPhoto(t, s, "a1", "cat.jpg", "second"),
		addPhoto(t, s, "a1", "cat.jpg", "third"),
	}

	var buf bytes.Buffer
	written, err := BuildAlbumZip(&buf, s, photos)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	entries := readZip(t, &buf)
	assert.Equal(t, map[string]string{
		"cat.jpg":     "first",
		"cat (1).jpg": "second",
		"cat (2).jpg": "third",
	}, entries)
}

func TestBuildAlbumZipFallsBackToPhysicalName(t *testing.T) {
	s := newTestStore(t)

	p := addPhoto(t, s, "a1", "orig.png", "data")
	p.FileName = ""

	var buf bytes.Buffer
	written, err := BuildAlbumZip(&buf, s, []model.Photo{p})
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	phys, err := s.Resolve(p.FileURL)
	require.NoError(t, err)

	entries := readZip(t, &buf)
	assert.Contains(t, entries, filepath.Base(phys))
}
