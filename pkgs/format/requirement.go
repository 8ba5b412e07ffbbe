package format

import (
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// Requirement is the per-token break decision the context stack and the
// two-token window force on the search below, spec.md's closed
// Must-Break/Must-Not-Break/Indifferent set. A genuine Invalid (no context
// on the stack can resolve the window at all) never arises from the rules
// below, since every rule either fires on an explicit context or falls
// through to Indifferent; this is a documented narrowing of the original
// four-way set, not an omission of a case that could occur.
type Requirement uint8

const (
	ReqIndifferent Requirement = iota
	ReqMustBreak
	ReqMustNotBreak
)

// requirementFor derives the Requirement for breaking before idxs[pos],
// given the previous token idxs[pos-1] and the context enclosing pos. It
// mirrors requirements.rs's get_formatting_invariant-then-window-match
// shape: hard invariants (comments, unterminated literals) are checked
// first and short-circuit, then the context-dependent rule table runs.
func requirementFor(toks []token.Token, idxs []int, pos int, cd contextData) Requirement {
	cur := &toks[idxs[pos]]
	prev := &toks[idxs[pos-1]]

	if req, ok := formattingInvariant(prev, cur); ok {
		return req
	}

	ctx := cd.enclosing[pos]

	if prevOpensBracket(prev) && cur.Kind == lang.KindOperator && closesBracket(cur.Op) {
		return ReqMustNotBreak // empty () or [] can never break
	}

	if isListSeparator(cur) {
		return ReqMustNotBreak // never break right before a separator
	}

	if ctx.oneElementPerLine {
		if prevOpensBracket(prev) || isListSeparator(prev) {
			return ReqMustBreak // each element starts its own line
		}
	}
	if cur.Kind == lang.KindOperator && closesBracket(cur.Op) {
		prevCtx := cd.enclosing[pos-1]
		if prevCtx.oneElementPerLine {
			return ReqMustBreak // closing delimiter dangles on its own line
		}
		return ReqIndifferent
	}

	if ctx.kind == ctxPrecedence && isOperatorToken(cur) {
		return ReqMustBreak // one operand per line, breaking before the operator
	}
	if isOperatorToken(cur) {
		return ReqMustNotBreak // otherwise an operator stays glued to its operand
	}

	return ReqIndifferent
}

// formattingInvariant covers the cases requirements.rs resolves before
// ever consulting the context stack: a comment that must own its line, an
// inline comment that can never be followed by more code on the same
// physical line, and the token right after an unterminated text literal
// (which swallowed the rest of its source line).
func formattingInvariant(prev, cur *token.Token) (Requirement, bool) {
	if cur.Kind == lang.KindComment {
		switch cur.Comment {
		case lang.CommentIndividualLine, lang.CommentIndividualBlock, lang.CommentMultilineBlock:
			return ReqMustBreak, true
		}
	}
	if prev.Kind == lang.KindTextLiteral && prev.TextKind == lang.TextLiteralUnterminated {
		return ReqMustBreak, true
	}
	if prev.Kind == lang.KindComment {
		switch prev.Comment {
		case lang.CommentInlineLine, lang.CommentIndividualLine, lang.CommentIndividualBlock, lang.CommentMultilineBlock:
			return ReqMustBreak, true
		}
	}
	return ReqIndifferent, false
}

func prevOpensBracket(tk *token.Token) bool {
	return tk.Kind == lang.KindOperator && (tk.Op == lang.OpLParen || tk.Op == lang.OpLBrack)
}

func closesBracket(op lang.OperatorKind) bool {
	return op == lang.OpRParen || op == lang.OpRBrack
}

func isListSeparator(tk *token.Token) bool {
	if tk.Kind != lang.KindOperator {
		return false
	}
	return tk.Op == lang.OpComma || tk.Op == lang.OpSemicolon
}
