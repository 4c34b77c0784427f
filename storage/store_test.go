package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return s
}

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")

	s, err := New(root)
	require.NoError(t, err)

	info, err := os.Stat(s.Root())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "/uploads", s.Prefix())
}

func TestAllocateUnique(t *testing.T) {
	s := newTestStore(t)

	physSeen := map[string]bool{}
	urlSeen := map[string]bool{}

	for range 50 {
		phys, public, err := s.Allocate("album1", "holiday.JPG")
		require.NoError(t, err)

		assert.False(t, physSeen[phys], "physical path allocated twice")
		assert.False(t, urlSeen[public], "public url allocated twice")
		physSeen[phys] = true
		urlSeen[public] = true

		// Extension is preserved byte for byte
		assert.True(t, strings.HasSuffix(phys, ".JPG"))
		assert.True(t, strings.HasSuffix(public, ".JPG"))
		assert.True(t, strings.HasPrefix(public, "/uploads/album1/"))
	}

	// Album directory was created on demand
	info, err := os.Stat(filepath.Join(s.Root(), "album1"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAllocateNoExtension(t *testing.T) {
	s := newTestStore(t)

	phys, public, err := s.Allocate("album1", "README")
	require.NoError(t, err)
	assert.False(t, strings.Contains(filepath.Base(phys), "."))
	assert.False(t, strings.Contains(public[len("/uploads/album1/"):], "."))
}

func TestResolveRoundTrip(t *testing.T) {
	s := newTestStore(t)

	phys, public, err := s.Allocate("album1", "cat.png")
	require.NoError(t, err)

	resolved, err := s.Resolve(public)
	require.NoError(t, err)
	assert.Equal(t, phys, resolved)
}

func TestResolveRejectsForeignURLs(t *testing.T) {
	s := newTestStore(t)

	for _, bad := range []string{
		"",
		"/other/album1/x.jpg",
		"/uploads",
		"/uploads/",
		"/uploads/album1/../../../etc/passwd",
		"/uploads/./x.jpg",
		"/uploads//x.jpg",
		"uploads/album1/x.jpg",
	} {
		_, err := s.Resolve(bad)
		assert.ErrorIs(t, err, ErrNotManaged, "expected %q to be rejected", bad)
	}
}

func TestResolveDoesNotCheckExistence(t *testing.T) {
	s := newTestStore(t)

	resolved, err := s.Resolve("/uploads/ghost-album/ghost.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root(), "ghost-album", "ghost.jpg"), resolved)
}
