package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFormattableExtensions(t *testing.T) {
	assert.True(t, IsFormattable("a.pas"))
	assert.True(t, IsFormattable("a.PAS"))
	assert.True(t, IsFormattable("b.Dpr"))
	assert.True(t, IsFormattable("c.dpk"))
	assert.False(t, IsFormattable("a.pas1"))
	assert.False(t, IsFormattable("a.txt"))
}

func TestResolveWalksDirectoryFilteringExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.pas"), []byte("unit U; end."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	files, invalid := Resolve([]string{dir})
	assert.Empty(t, invalid)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "unit.pas"), files[0])
}

func TestResolveIncludesExplicitFileRegardlessOfExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weird.ext")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	files, invalid := Resolve([]string{path})
	assert.Empty(t, invalid)
	assert.Equal(t, []string{path}, files)
}

func TestResolveReportsInvalidPattern(t *testing.T) {
	_, invalid := Resolve([]string{"/no/such/dir/or/glob/*.pas"})
	assert.Len(t, invalid, 1)
}

func TestCodecDefaultsToWindows1252(t *testing.T) {
	assert.Equal(t, Codec(""), Codec("windows-1252"))
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unit.pas")
	require.NoError(t, os.WriteFile(path, []byte("begin end."), 0o644))

	text, err := Read(path, Codec(""))
	require.NoError(t, err)
	assert.Equal(t, "begin end.", text)

	require.NoError(t, Write(path, "begin\nend.", Codec("")))
	text, err = Read(path, Codec(""))
	require.NoError(t, err)
	assert.Equal(t, "begin\nend.", text)
}
