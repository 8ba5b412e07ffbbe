package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFormattingConfig(), cfg)
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pasfmt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
encoding = "utf-8"
max_line_length = 100

[reconstruction]
newline = "\r\n"
indent_unit = "    "
continuation_unit = "  "
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, 100, cfg.MaxLineLength)
	assert.Equal(t, "\r\n", cfg.Reconstruction.Newline)
	assert.Equal(t, "    ", cfg.Reconstruction.IndentUnit)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/pasfmt.toml")
	assert.Error(t, err)
}
