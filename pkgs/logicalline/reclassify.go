package logicalline

import (
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// reclassifyKeywords promotes specific IdentifierOrKeyword tokens to
// KindKeyword once the logical line grouping has resolved the syntactic
// position that makes their keyword sense unambiguous. Every other
// IdentifierOrKeyword token is left exactly as the lexer classified it:
// the license to stay unresolved, matching an ordinary identifier, is
// intentional rather than a gap.
func reclassifyKeywords(toks []token.Token, lines []Line) {
	for _, ln := range lines {
		if len(ln.Tokens) == 0 {
			continue
		}
		switch ln.Kind {
		case lang.LineRoutineHeader, lang.LinePropertyDeclaration:
			promoteDirectiveTail(toks, ln.Tokens)
		case lang.LineTypeHead:
			promoteHelperFor(toks, ln.Tokens)
		}
		inTypeBody := ln.ParentToken >= 0 && isTypeBodyOpener(toks[ln.ParentToken].Keyword)
		if inTypeBody && (ln.Kind == lang.LineUnknown || ln.Kind == lang.LineInlineDeclaration) {
			promoteVisibility(toks, ln.Tokens)
		}
		if ln.Kind == lang.LineInlineDeclaration {
			promoteAbsolute(toks, ln.Tokens)
		}
	}
}

// promoteDirectiveTail promotes every IdentifierOrKeyword token that begins
// a ";"-separated clause after the parameter list/return type of a routine
// or property declaration: virtual, override, stdcall, read, write,
// default, and so on.
func promoteDirectiveTail(toks []token.Token, idxs []int) {
	atClauseStart := false
	depth := 0
	for _, idx := range idxs {
		tk := &toks[idx]
		switch {
		case tk.Kind == lang.KindOperator && tk.Op == lang.OpLParen:
			depth++
		case tk.Kind == lang.KindOperator && tk.Op == lang.OpRParen && depth > 0:
			depth--
		case tk.Kind == lang.KindOperator && tk.Op == lang.OpSemicolon && depth == 0:
			atClauseStart = true
			continue
		}
		if atClauseStart && tk.Kind == lang.KindIdentifierOrKeyword {
			promote(tk)
		}
		atClauseStart = false
	}
}

// promoteHelperFor promotes "helper" when it appears in a "class helper for
// X" type-head line; the ancestor-clause lookahead that detects this shape
// lives in the builder, so by the time this runs the line is already known
// to be a genuine type head rather than a forward declaration.
func promoteHelperFor(toks []token.Token, idxs []int) {
	for _, idx := range idxs {
		tk := &toks[idx]
		if tk.Kind == lang.KindIdentifierOrKeyword && tk.Keyword == lang.KwHelper {
			promote(tk)
		}
	}
}

// promoteVisibility promotes private/protected/public/published/strict when
// they are the first token of a line inside a type body (the builder
// leaves such lines at LineUnknown or LineInlineDeclaration since a bare
// visibility specifier isn't itself a declaration).
func promoteVisibility(toks []token.Token, idxs []int) {
	if len(idxs) == 0 {
		return
	}
	first := &toks[idxs[0]]
	if first.Kind != lang.KindIdentifierOrKeyword {
		return
	}
	switch first.Keyword {
	case lang.KwPrivate, lang.KwProtected, lang.KwPublic, lang.KwPublished:
		promote(first)
	case lang.KwStrict:
		if len(idxs) > 1 {
			second := &toks[idxs[1]]
			if second.Keyword == lang.KwPrivate || second.Keyword == lang.KwProtected {
				promote(first)
				promote(second)
			}
		}
	}
}

// promoteAbsolute promotes "absolute" when it follows the first token of a
// declaration-section line ("X: Integer absolute Y;"). The builder gives
// lines of every declaration section the same kind, so a var/threadvar
// section is not told apart from the others here.
func promoteAbsolute(toks []token.Token, idxs []int) {
	for i, idx := range idxs {
		tk := &toks[idx]
		if tk.Kind == lang.KindIdentifierOrKeyword && tk.Keyword == lang.KwAbsolute && i > 0 {
			promote(tk)
		}
	}
}

func promote(tk *token.Token) {
	tk.Kind = lang.KindKeyword
}
