package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasfmt/pasfmt/pkgs/config"
)

func TestDispatchPrintModeDoesNotModifyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unit.pas")
	require.NoError(t, os.WriteFile(path, []byte("BEGIN END."), 0o644))

	code, err := dispatch(t.Context(), []string{path}, config.DefaultFormattingConfig(), true, false)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BEGIN END.", string(contents))
}

func TestDispatchDefaultModeRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unit.pas")
	require.NoError(t, os.WriteFile(path, []byte("BEGIN END."), 0o644))

	code, err := dispatch(t.Context(), []string{path}, config.DefaultFormattingConfig(), false, false)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "begin")
}

func TestDispatchCheckModeReportsExitOneOnDivergence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unit.pas")
	require.NoError(t, os.WriteFile(path, []byte("BEGIN END."), 0o644))

	code, err := dispatch(t.Context(), []string{path}, config.DefaultFormattingConfig(), false, true)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BEGIN END.", string(contents), "check mode must not rewrite the file")
}

func TestDispatchNoPathsAndNoPipeErrors(t *testing.T) {
	_, err := dispatch(t.Context(), nil, config.DefaultFormattingConfig(), false, false)
	assert.Error(t, err)
}

func TestLogLevelToLogrusMapsAllSpecValues(t *testing.T) {
	for _, lvl := range []string{"OFF", "ERROR", "WARN", "INFO", "DEBUG", "TRACE"} {
		assert.NotEmpty(t, logLevelToLogrus(lvl))
	}
}
