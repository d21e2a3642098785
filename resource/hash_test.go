package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHashDetectsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.kwg")
	assert.NoError(t, os.WriteFile(path, []byte("version one"), 0o644))

	h1, err := ContentHash(path)
	assert.NoError(t, err)

	h2, unchanged, err := CachedByHash(path, h1)
	assert.NoError(t, err)
	assert.True(t, unchanged)
	assert.Equal(t, h1, h2)

	assert.NoError(t, os.WriteFile(path, []byte("version two"), 0o644))
	h3, unchanged, err := CachedByHash(path, h1)
	assert.NoError(t, err)
	assert.False(t, unchanged)
	assert.NotEqual(t, h1, h3)
}
