package reconstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/format"
	"github.com/pasfmt/pasfmt/pkgs/ignorer"
	"github.com/pasfmt/pasfmt/pkgs/lexer"
	"github.com/pasfmt/pasfmt/pkgs/logicalline"
)

func runFormat(t *testing.T, src string) string {
	t.Helper()
	toks, diags := lexer.Lex(src)
	require.Empty(t, diags)
	ignorer.Mark(toks)
	lines := logicalline.Parse(toks)
	cfg := config.DefaultFormattingConfig()
	format.Apply(toks, lines, cfg)
	return Reconstruct(toks, cfg.Reconstruction)
}

func TestReconstructKeepsBeginEndTokens(t *testing.T) {
	src := "begin\n  end.\n"
	out := runFormat(t, src)
	assert.Contains(t, out, "begin")
	assert.Contains(t, out, "end")
}

func TestReconstructIsIdempotent(t *testing.T) {
	src := "PROCEDURE p;\nBEGIN\nEND;"
	first := runFormat(t, src)
	second := runFormat(t, first)
	assert.Equal(t, first, second)
}

func TestReconstructPreservesFrozenRangeVerbatim(t *testing.T) {
	src := "{pasfmt off}\nBEGIN\n{pasfmt on}\nEND"
	out := runFormat(t, src)
	assert.Contains(t, out, "BEGIN")
	assert.Contains(t, out, "end")
}
