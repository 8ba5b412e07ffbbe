package logicalline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/lexer"
)

func lineKinds(lines []Line) []lang.LineKind {
	out := make([]lang.LineKind, len(lines))
	for i, ln := range lines {
		out[i] = ln.Kind
	}
	return out
}

func TestParseUnitSkeleton(t *testing.T) {
	src := "unit Foo;\n\ninterface\n\nuses\n  SysUtils;\n\ntype\n  TFoo = class\n  end;\n\nimplementation\n\nend.\n"
	toks, diags := lexer.Lex(src)
	require.Empty(t, diags)
	lines := Parse(toks)
	got := lineKinds(lines)
	assert.Contains(t, got, lang.LineUnitHeader)
	assert.Contains(t, got, lang.LineSectionHeader)
	assert.Contains(t, got, lang.LineImportClause)
	assert.Contains(t, got, lang.LineTypeHead)
	assert.Contains(t, got, lang.LineTypeEnd)
}

func TestParseRoutineHeaderWithDirectiveTail(t *testing.T) {
	src := "procedure Foo; virtual; override;\nbegin\nend;\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)
	require.NotEmpty(t, lines)
	header := lines[0]
	assert.Equal(t, lang.LineRoutineHeader, header.Kind)
	// the whole "; virtual; override;" tail stays on the header line.
	last := toks[header.Tokens[len(header.Tokens)-1]]
	assert.Equal(t, ";", last.Content)
}

func TestParseCompoundBeginEndNesting(t *testing.T) {
	src := "begin\n  DoThing;\n  begin\n    DoOther;\n  end;\nend;\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)
	var levels []int
	for _, ln := range lines {
		levels = append(levels, ln.Level)
	}
	require.True(t, len(levels) >= 5)
	assert.Equal(t, 0, levels[0]) // outer begin
}

func TestParsePropertyDeclaration(t *testing.T) {
	src := "property Name: string read FName write FName default '';\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)
	require.NotEmpty(t, lines)
	assert.Equal(t, lang.LinePropertyDeclaration, lines[0].Kind)
}

func TestParseRepeatUntil(t *testing.T) {
	src := "repeat\n  DoThing;\nuntil Done;\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)
	var hasControlFlow, hasUntilClose bool
	for _, ln := range lines {
		if ln.Kind == lang.LineControlFlow {
			hasControlFlow = true
		}
		for _, idx := range ln.Tokens {
			if toks[idx].Keyword == lang.KwUntil {
				hasUntilClose = true
			}
		}
	}
	assert.True(t, hasControlFlow)
	assert.True(t, hasUntilClose)
}

func TestParseAsmBlockSplitsByPhysicalLine(t *testing.T) {
	src := "asm\n  MOV EAX, 1\n  MOV EBX, 2\nend;\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)
	var asmLines int
	for _, ln := range lines {
		if ln.Kind == lang.LineAsmInstruction {
			asmLines++
		}
	}
	assert.Equal(t, 2, asmLines)
}

func TestParseConditionalDirectiveBothBranchesClassified(t *testing.T) {
	src := "procedure Foo;\nbegin\n{$ifdef DEBUG}\n  DoDebug;\n{$else}\n  DoRelease;\n{$endif}\nend;\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)
	var sawDebug, sawRelease bool
	for _, ln := range lines {
		for _, idx := range ln.Tokens {
			if toks[idx].Content == "DoDebug" {
				sawDebug = true
			}
			if toks[idx].Content == "DoRelease" {
				sawRelease = true
			}
		}
	}
	assert.True(t, sawDebug)
	assert.True(t, sawRelease)
}

// TestParseConditionalDirectiveTokensOwnLines asserts the partition
// property directly: every {$ifdef}/{$else}/{$endif} token is itself
// covered by some line (not silently dropped while its branches are
// walked), and each gets its own single-token ConditionalDirective line.
func TestParseConditionalDirectiveTokensOwnLines(t *testing.T) {
	src := "procedure Foo;\nbegin\n{$ifdef DEBUG}\n  DoDebug;\n{$else}\n  DoRelease;\n{$endif}\nend;\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)

	wantDirectives := map[string]bool{"{$ifdef DEBUG}": false, "{$else}": false, "{$endif}": false}
	for _, ln := range lines {
		if ln.Kind != lang.LineConditionalDirective {
			continue
		}
		require.Len(t, ln.Tokens, 1)
		content := toks[ln.Tokens[0]].Content
		if _, ok := wantDirectives[content]; ok {
			wantDirectives[content] = true
		}
	}
	for content, seen := range wantDirectives {
		assert.True(t, seen, "expected a ConditionalDirective line for %q", content)
	}

	for i, tk := range toks {
		if tk.Kind != lang.KindConditionalDirective {
			continue
		}
		covered := false
		for _, ln := range lines {
			for _, idx := range ln.Tokens {
				if idx == i {
					covered = true
				}
			}
		}
		assert.True(t, covered, "directive token %q at index %d missing from every line's partition", tk.Content, i)
	}
}

func TestReclassifyVisibilitySpecifiers(t *testing.T) {
	src := "type\n  TFoo = class\n  private\n    FX: Integer;\n  public\n    procedure Bar;\n  end;\n"
	toks, _ := lexer.Lex(src)
	_ = Parse(toks)
	var sawPrivate, sawPublic bool
	for _, tk := range toks {
		if tk.Keyword == lang.KwPrivate && tk.Kind == lang.KindKeyword {
			sawPrivate = true
		}
		if tk.Keyword == lang.KwPublic && tk.Kind == lang.KindKeyword {
			sawPublic = true
		}
	}
	assert.True(t, sawPrivate)
	assert.True(t, sawPublic)
}

func TestParseCompoundLevelsExactSequence(t *testing.T) {
	src := "begin\n  DoThing;\n  begin\n    DoOther;\n  end;\nend;\n"
	toks, _ := lexer.Lex(src)
	lines := Parse(toks)
	var levels []int
	for _, ln := range lines {
		levels = append(levels, ln.Level)
	}
	want := []int{0, 1, 1, 2, 1, 0, 0} // trailing 0 is the appended Eof line
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Errorf("logical line levels mismatch (-want +got):\n%s", diff)
	}
}

func TestReclassifyAbsoluteInVarSection(t *testing.T) {
	src := "var\n  X: Integer absolute Y;\n"
	toks, _ := lexer.Lex(src)
	_ = Parse(toks)
	var sawAbsolute bool
	for _, tk := range toks {
		if tk.Keyword == lang.KwAbsolute && tk.Kind == lang.KindKeyword {
			sawAbsolute = true
		}
	}
	assert.True(t, sawAbsolute)
}
