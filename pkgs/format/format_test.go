package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/lexer"
	"github.com/pasfmt/pasfmt/pkgs/logicalline"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, diags := lexer.Lex(src)
	require.Empty(t, diags)
	return toks
}

func TestLowercaseKeywordsFullAndPartialUppercase(t *testing.T) {
	toks := lexAll(t, "BEGIN End")
	LowercaseKeywords(toks)
	assert.Equal(t, "begin", toks[0].Text())
	assert.Equal(t, "end", toks[1].Text())
}

func TestLowercaseKeywordsIgnoresImpureKeywords(t *testing.T) {
	toks := lexAll(t, "ABSOLUTE := 0")
	LowercaseKeywords(toks)
	assert.Equal(t, "ABSOLUTE", toks[0].Text())
}

func TestFormatLineCommentInsertsLeadingSpace(t *testing.T) {
	toks := lexAll(t, "//a")
	FormatCommentsAndDirectives(toks)
	assert.Equal(t, "// a", toks[0].Text())
}

func TestFormatLineCommentSeparatorLeftAlone(t *testing.T) {
	toks := lexAll(t, "//----------")
	FormatCommentsAndDirectives(toks)
	assert.Equal(t, "//----------", toks[0].Text())
}

func TestFormatCompilerDirectiveUppercasesWord(t *testing.T) {
	toks := lexAll(t, "{$define foo}")
	FormatCommentsAndDirectives(toks)
	assert.Equal(t, "{$DEFINE foo}", toks[0].Text())
}

func TestFormatCompilerDirectiveInvalidNameUnchanged(t *testing.T) {
	toks := lexAll(t, "{$a,b}")
	FormatCommentsAndDirectives(toks)
	assert.Equal(t, "{$a,b}", toks[0].Text())
}

func TestFormatBatchedSwitchDirectives(t *testing.T) {
	toks := lexAll(t, "{$o+,r-,b+}")
	FormatCommentsAndDirectives(toks)
	assert.Equal(t, "{$O+,R-,B+}", toks[0].Text())
}

func TestIgnoredTokensSkipKeywordLowercasing(t *testing.T) {
	toks := lexAll(t, "{pasfmt off} BEGIN {pasfmt on} END")
	// simulate the ignorer having run
	for i := range toks {
		if toks[i].Content == "BEGIN" || toks[i].Content == "{pasfmt off}" {
			toks[i].Ignored = true
		}
	}
	LowercaseKeywords(toks)
	var begin, end string
	for _, tk := range toks {
		switch tk.Content {
		case "BEGIN":
			begin = tk.Text()
		case "END":
			end = tk.Text()
		}
	}
	assert.Equal(t, "BEGIN", begin)
	assert.Equal(t, "end", end)
}

func TestAssignLineBreaksNestedBeginGetsOwnLineAndIndent(t *testing.T) {
	toks := lexAll(t, "procedure P;\nbegin\nbegin\nend;\nend;")
	lines := logicalline.Parse(toks)
	AssignLineBreaks(lines, toks, config.DefaultFormattingConfig())

	var innerBegin *token.Token
	seen := 0
	for i := range toks {
		if toks[i].Content == "begin" {
			seen++
			if seen == 2 {
				innerBegin = &toks[i]
			}
		}
	}
	require.NotNil(t, innerBegin)
	assert.Equal(t, uint32(1), innerBegin.NewlinesBefore)
	assert.True(t, innerBegin.IndentationsBefore >= 1)
}

func TestAssignLineBreaksExplodesOverLongParameterList(t *testing.T) {
	src := "procedure VeryLongProcedureNameIndeedForTesting(ParameterNumberOneIsQuiteLongIndeed, ParameterNumberTwoIsAlsoQuiteLongIndeed, ParameterThreeYetAnotherLongOne: Integer);\nbegin\nend;\n"
	toks := lexAll(t, src)
	lines := logicalline.Parse(toks)
	diags := AssignLineBreaks(lines, toks, config.DefaultFormattingConfig())
	assert.Empty(t, diags)

	var brokenBeforeParam, brokenBeforeClose int
	for i, tk := range toks {
		switch tk.Content {
		case "ParameterNumberTwoIsAlsoQuiteLongIndeed", "ParameterThreeYetAnotherLongOne":
			if tk.NewlinesBefore == 1 {
				brokenBeforeParam++
			}
			assert.GreaterOrEqual(t, toks[i].ContinuationsBefore, uint32(1))
		case ")":
			if tk.NewlinesBefore == 1 {
				brokenBeforeClose++
			}
		}
	}
	assert.Equal(t, 2, brokenBeforeParam, "each later parameter should start its own line")
	assert.Equal(t, 1, brokenBeforeClose, "the closing paren should dangle on its own line")
}

func TestAssignLineBreaksKeepsShortParameterListOnOneLine(t *testing.T) {
	src := "procedure P(A, B: Integer);\nbegin\nend;\n"
	toks := lexAll(t, src)
	lines := logicalline.Parse(toks)
	AssignLineBreaks(lines, toks, config.DefaultFormattingConfig())

	for _, tk := range toks {
		if tk.Content == "B" || tk.Content == ")" {
			assert.Equal(t, uint32(0), tk.NewlinesBefore, tk.Content)
		}
	}
}

func TestAssignLineBreaksIndividualCommentForcesOwnLine(t *testing.T) {
	toks := lexAll(t, "x := 1;\n{ a standalone comment }\ny := 2;")
	lines := logicalline.Parse(toks)
	AssignLineBreaks(lines, toks, config.DefaultFormattingConfig())

	for i := range toks {
		if toks[i].Kind == lang.KindComment {
			assert.Equal(t, uint32(1), toks[i].NewlinesBefore)
		}
	}
}
