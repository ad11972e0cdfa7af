package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	_, err := Discover(dir, "")
	assert.ErrorContains(t, err, "no .csproj file")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Shop.csproj"), []byte("<Project></Project>"), 0644))
	p, err := Discover(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "Shop", p.Name)
	assert.Equal(t, filepath.Join(dir, "Shop.csproj"), p.ManifestPath())
	assert.Equal(t, filepath.Join(dir, "Files"), p.AssetsDir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Other.csproj"), []byte("<Project></Project>"), 0644))
	_, err = Discover(dir, "")
	assert.ErrorContains(t, err, "--project-name")

	p, err = Discover(dir, "Other")
	require.NoError(t, err)
	assert.Equal(t, "Other", p.Name)
}
