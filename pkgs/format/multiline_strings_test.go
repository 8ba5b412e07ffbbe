package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/lang"
)

func TestReindentMultilineStringsMatchesTrailingIndentation(t *testing.T) {
	// trailing-quote line has four spaces; the literal is placed at
	// indent level one (two-space indent unit) so internal lines lose
	// their four-space prefix in favour of the chosen two-space one.
	src := "'''\n    line one\n    line two\n    '''"
	toks := lexAll(t, src)
	require.Equal(t, lang.TextLiteralMultiLine, toks[0].TextKind)

	toks[0].IndentationsBefore = 1
	settings := config.DefaultReconstructionSettings()
	outDiags := ReindentMultilineStrings(toks, settings)
	assert.Empty(t, outDiags)

	assert.Contains(t, toks[0].Text(), "  line one")
	assert.Contains(t, toks[0].Text(), "  line two")
	assert.NotContains(t, toks[0].Text(), "    line one")
}

func TestReindentMultilineStringsPreservesStrictPrefixAsEmptyLine(t *testing.T) {
	src := "'''\n    first\n  \n    last\n    '''"
	toks := lexAll(t, src)

	outDiags := ReindentMultilineStrings(toks, config.DefaultReconstructionSettings())
	assert.Empty(t, outDiags)
}

func TestReindentMultilineStringsWarnsOnMismatchedPrefix(t *testing.T) {
	src := "'''\n    ok\nnotindented\n    '''"
	toks := lexAll(t, src)

	outDiags := ReindentMultilineStrings(toks, config.DefaultReconstructionSettings())
	require.Len(t, outDiags, 1)
}
