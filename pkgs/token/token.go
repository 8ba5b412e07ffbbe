// Package token defines the Token type that flows through every stage of
// the formatter: the lexer produces them, the directive tree and logical
// line parser classify and group them, the formatting engine attaches
// layout decisions to them, and the reconstructor consumes them to produce
// the final text.
package token

import "github.com/pasfmt/pasfmt/pkgs/lang"

// Token is a single lexical token together with the whitespace that
// preceded it and the mutable formatting data the later stages attach to
// it. Content and Raw are set once by the lexer and never
// change; everything below the formatting data line is overwritten by
// later stages.
type Token struct {
	// Content is the token's own text, not including any leading
	// whitespace. Raw gives access to the original slice with whitespace
	// attached, needed only for byte-exact ignored-range reconstruction.
	Content string
	Raw     string // Content, with the original leading whitespace prefix restored

	Kind     lang.Kind
	Op       lang.OperatorKind
	Keyword  lang.KeywordKind
	NumBase  lang.NumberBase
	TextKind lang.TextLiteralKind
	Comment  lang.CommentKind
	Dir      lang.DirectiveKind

	Line, Column int // 1-based, for diagnostics only

	// formatting data, attached by later stages
	Ignored              bool // true inside a {pasfmt off}..{pasfmt on} range
	NewlinesBefore       uint32
	IndentationsBefore   uint32
	ContinuationsBefore  uint32
	SpacesBefore         uint32
	formattedContent     string
	hasFormattedContent  bool
}

// SetContent overrides the text emitted for this token by the
// reconstructor, used by the token-local formatters (keyword casing,
// comment body normalisation, directive casing, multiline string
// reindentation).
func (t *Token) SetContent(s string) {
	t.formattedContent = s
	t.hasFormattedContent = true
}

// Text returns the content to emit: the formatter's override if one was
// set, otherwise the token's original content.
func (t *Token) Text() string {
	if t.hasFormattedContent {
		return t.formattedContent
	}
	return t.Content
}

// IsKeywordLike reports whether this token is a pure keyword or has been
// promoted to one by the logical line parser's reclassification.
func (t *Token) IsKeywordLike() bool {
	return t.Kind == lang.KindKeyword
}

// IsEOF reports whether this is the sentinel end-of-file token every token
// stream is terminated with.
func (t *Token) IsEOF() bool {
	return t.Kind == lang.KindEOF
}

// Stream is a convenience alias used across packages that operate over a
// whole token slice rather than a single token.
type Stream = []Token
