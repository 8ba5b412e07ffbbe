// Package lexer turns Pascal/Delphi source text into a flat token stream.
// It never fails: anything it cannot classify becomes an Unknown token, and
// the concatenation of every token's raw text (leading whitespace
// included) always reproduces the input exactly.
package lexer

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pasfmt/pasfmt/pkgs/diag"
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// Lexer walks a source string once, left to right, producing a Token
// stream. Mode switches (asm blocks) are tracked on the lexer itself,
// mirroring how the teacher's mode-based Lexer struct carries
// LanguageMode/CommandMode/PatternMode state across calls to NextToken.
type Lexer struct {
	src string
	pos int

	line, column int

	isFirst bool // true until the first non-EOF token has been emitted
	inAsm   bool

	diagnostics []diag.Diagnostic
}

// New creates a Lexer over src. Lex runs it to completion.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, column: 1, isFirst: true}
}

// Lex tokenizes src completely and returns the token stream (always ending
// in a KindEOF token) plus any diagnostics raised along the way.
func Lex(src string) ([]token.Token, []diag.Diagnostic) {
	l := New(src)
	var toks []token.Token
	for {
		t := l.next()
		toks = append(toks, t)
		if t.Kind == lang.KindEOF {
			break
		}
	}
	return toks, l.diagnostics
}

func (l *Lexer) warn(format string, args ...any) {
	l.diagnostics = append(l.diagnostics, diag.Warnf(l.line, l.column, format, args...))
}

// next consumes and returns the next token, including its leading
// whitespace.
func (l *Lexer) next() token.Token {
	wsStart := l.pos
	hadNewline := l.skipWhitespace()

	if l.pos >= len(l.src) {
		return token.Token{Kind: lang.KindEOF, Raw: l.src[wsStart:l.pos], Line: l.line, Column: l.column}
	}

	contentStart := l.pos
	startLine, startCol := l.line, l.column

	t := l.lexOne(hadNewline)
	t.Content = l.src[contentStart:l.pos]
	t.Raw = l.src[wsStart:l.pos]
	t.Line, t.Column = startLine, startCol

	l.isFirst = false
	return t
}

// skipWhitespace advances past a run of whitespace codepoints (anything
// <= U+0020, plus the CJK ideographic space U+3000) and reports whether a
// newline was crossed. A whitespace run longer than math.MaxUint32 code
// points raises a single warning; the run is not truncated and stays
// whole in the token's Raw text.
func (l *Lexer) skipWhitespace() bool {
	hadNewline := false
	var count uint64
	overflowed := false
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isWhitespaceRune(r) {
			break
		}
		if r == '\n' {
			hadNewline = true
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos += size
		count++
		if count == math.MaxUint32 && !overflowed {
			overflowed = true
			l.warn("whitespace run reached %d code points", uint32(math.MaxUint32))
		}
	}
	return hadNewline
}

func isWhitespaceRune(r rune) bool {
	return r <= 0x20 || r == 0x3000
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || (r > 127 && r != 0x3000)
}

func isIdentPartRune(r rune) bool {
	return isIdentStartRune(r) || (r >= '0' && r <= '9')
}

func (l *Lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advanceByte() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return b
}

func (l *Lexer) advanceRune() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// lexOne dispatches on the current byte. hadNewlineBefore tells the
// comment classifiers whether a newline was crossed in the whitespace
// immediately preceding this token.
func (l *Lexer) lexOne(hadNewlineBefore bool) token.Token {
	if l.inAsm {
		return l.lexAsm(hadNewlineBefore)
	}
	return l.lexLanguage(hadNewlineBefore)
}

func (l *Lexer) lexLanguage(hadNewlineBefore bool) token.Token {
	ch := l.src[l.pos]
	switch {
	case ch >= '0' && ch <= '9':
		return l.lexDecimalNumber()
	case ch == '$':
		return l.lexHexNumber()
	case ch == '%':
		return l.lexBinaryNumber()
	case ch == '&':
		return l.lexAmpersand()
	case ch == '\'':
		return l.lexTextLiteral()
	case ch == '{':
		return l.lexBraceComment(hadNewlineBefore)
	case ch == '(':
		return l.lexLParenOrComment(hadNewlineBefore)
	case ch == ')':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpRParen}
	case ch == '/':
		return l.lexSlash(hadNewlineBefore)
	case ch == '.':
		return l.lexDot()
	case ch == ':':
		l.advanceByte()
		if l.peekByte(0) == '=' {
			l.advanceByte()
			return token.Token{Kind: lang.KindOperator, Op: lang.OpAssign}
		}
		return token.Token{Kind: lang.KindOperator, Op: lang.OpColon}
	case ch == '<':
		l.advanceByte()
		switch l.peekByte(0) {
		case '>':
			l.advanceByte()
			return token.Token{Kind: lang.KindOperator, Op: lang.OpNotEqual}
		case '=':
			l.advanceByte()
			return token.Token{Kind: lang.KindOperator, Op: lang.OpLessEqual}
		default:
			return token.Token{Kind: lang.KindOperator, Op: lang.OpLessThan}
		}
	case ch == '>':
		l.advanceByte()
		if l.peekByte(0) == '=' {
			l.advanceByte()
			return token.Token{Kind: lang.KindOperator, Op: lang.OpGreaterEqual}
		}
		return token.Token{Kind: lang.KindOperator, Op: lang.OpGreaterThan}
	case ch == '[':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpLBrack}
	case ch == ']':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpRBrack}
	case ch == '^':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpCaretType}
	case ch == '@':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpAddressOf}
	case ch == '+':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpPlus}
	case ch == '-':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpMinus}
	case ch == '*':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpStar}
	case ch == ',':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpComma}
	case ch == ';':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpSemicolon}
	case ch == '=':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpEqual}
	default:
		r := l.advanceRune()
		if isIdentStartRune(r) {
			return l.lexIdentifierOrKeyword(false)
		}
		return token.Token{Kind: lang.KindUnknown}
	}
}

// lexAsm dispatches inside an asm block: labels ("@A", "@@end", "@A@a")
// are always identifiers, double-quoted strings are legal, and plain
// words are identifiers except a bare "end", which is a keyword and pops
// back out of the block.
func (l *Lexer) lexAsm(hadNewlineBefore bool) token.Token {
	ch := l.src[l.pos]
	switch {
	case ch == '@':
		return l.lexAsmLabel()
	case ch == '"':
		return l.lexAsmTextLiteral()
	case ch >= '0' && ch <= '9':
		return l.lexAsmNumber()
	case ch == '\'':
		return l.lexTextLiteral()
	case ch == '{':
		return l.lexBraceComment(hadNewlineBefore)
	case ch == '(':
		return l.lexLParenOrComment(hadNewlineBefore)
	case ch == '/':
		return l.lexSlash(hadNewlineBefore)
	case ch == ':':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpColon}
	case ch == ',':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpComma}
	case ch == '+':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpPlus}
	case ch == '-':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpMinus}
	case ch == '*':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpStar}
	case ch == '[':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpLBrack}
	case ch == ']':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpRBrack}
	default:
		r := l.advanceRune()
		if isIdentStartRune(r) {
			return l.lexIdentifierOrKeyword(true)
		}
		return token.Token{Kind: lang.KindUnknown}
	}
}

func (l *Lexer) lexIdentifierOrKeyword(inAsmWord bool) token.Token {
	start := l.wordStart()
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPartRune(r) {
			break
		}
		l.pos += size
		l.column++
	}
	word := l.src[start:l.pos]
	kw, kind, ok := lang.LookupKeyword(word)
	if !ok {
		return token.Token{Kind: lang.KindIdentifier}
	}
	if inAsmWord {
		if kw != lang.KwEnd {
			return token.Token{Kind: lang.KindIdentifier}
		}
		l.inAsm = false
	}
	if kw == lang.KwAsm && kind == lang.KindKeyword {
		l.inAsm = true
	}
	return token.Token{Kind: kind, Keyword: kw}
}

// wordStart recovers the start of the identifier currently being scanned:
// lexIdentifierOrKeyword is always called right after the caller consumed
// exactly one ident-start rune via advanceRune, so we walk back over it.
func (l *Lexer) wordStart() int {
	i := l.pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(l.src[:i])
		if size == 0 || !isIdentPartRune(r) {
			break
		}
		i -= size
	}
	return i
}

func (l *Lexer) lexAsmLabel() token.Token {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '@' {
			l.advanceByte()
			continue
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPartRune(r) {
			break
		}
		l.pos += size
		l.column++
	}
	return token.Token{Kind: lang.KindIdentifier}
}

func (l *Lexer) lexDecimalNumber() token.Token {
	for l.pos < len(l.src) && isDecimalDigitOrSep(l.src[l.pos]) {
		l.advanceByte()
	}
	if l.peekByte(0) == '.' && isDigit(l.peekByte(1)) {
		l.advanceByte()
		for l.pos < len(l.src) && isDecimalDigitOrSep(l.src[l.pos]) {
			l.advanceByte()
		}
	}
	if ch := l.peekByte(0); ch == 'e' || ch == 'E' {
		save := l.pos
		l.advanceByte()
		if ch := l.peekByte(0); ch == '+' || ch == '-' {
			l.advanceByte()
		}
		if isDigit(l.peekByte(0)) {
			for l.pos < len(l.src) && isDecimalDigitOrSep(l.src[l.pos]) {
				l.advanceByte()
			}
		} else {
			l.pos = save
		}
	}
	return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberDecimal}
}

func (l *Lexer) lexHexNumber() token.Token {
	l.advanceByte() // '$'
	for l.pos < len(l.src) && isHexDigitOrSep(l.src[l.pos]) {
		l.advanceByte()
	}
	return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberHex}
}

func (l *Lexer) lexBinaryNumber() token.Token {
	l.advanceByte() // '%'
	for l.pos < len(l.src) && isBinaryDigitOrSep(l.src[l.pos]) {
		l.advanceByte()
	}
	return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberBinary}
}

// lexAmpersand handles the five '&'-prefixed forms (spec.md §4.1): '&$'
// and '&%' are hex/binary literals with the ampersand folded into their
// content, '&' followed by an octal digit is an octal literal, '&&'
// followed by an identifier and a bare '&' followed by an identifier both
// force identifier status even if the word would otherwise be a keyword.
func (l *Lexer) lexAmpersand() token.Token {
	l.advanceByte() // '&'
	switch l.peekByte(0) {
	case '$':
		l.advanceByte()
		for l.pos < len(l.src) && isHexDigitOrSep(l.src[l.pos]) {
			l.advanceByte()
		}
		return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberHex}
	case '%':
		l.advanceByte()
		for l.pos < len(l.src) && isBinaryDigitOrSep(l.src[l.pos]) {
			l.advanceByte()
		}
		return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberBinary}
	}
	if isOctalDigit(l.peekByte(0)) {
		for l.pos < len(l.src) && isOctalDigit(l.src[l.pos]) {
			l.advanceByte()
		}
		return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberOctal}
	}
	if l.peekByte(0) == '&' {
		l.advanceByte() // second '&' of "&&ident"
	}
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPartRune(r) {
			break
		}
		l.pos += size
		l.column++
	}
	return token.Token{Kind: lang.KindIdentifier}
}

// lexAsmNumber handles decimal literals optionally suffixed with a base
// indicator (H/O/B) as used inside asm blocks, e.g. "0FFh", "17o", "101b".
func (l *Lexer) lexAsmNumber() token.Token {
	start := l.pos
	for l.pos < len(l.src) && isHexDigit(l.src[l.pos]) {
		l.advanceByte()
	}
	if ch := l.peekByte(0); (ch == 'h' || ch == 'H') && !isIdentPartByte(l.peekByte(1)) {
		l.advanceByte()
		return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberHex}
	}
	// not hex-suffixed: only the pure decimal-digit prefix is a number,
	// rewind past any stray hex letters consumed above.
	l.pos = start
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advanceByte()
	}
	switch ch := l.peekByte(0); {
	case (ch == 'o' || ch == 'O') && !isIdentPartByte(l.peekByte(1)):
		l.advanceByte()
		return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberOctal}
	case (ch == 'b' || ch == 'B') && !isIdentPartByte(l.peekByte(1)):
		l.advanceByte()
		return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberBinary}
	default:
		return token.Token{Kind: lang.KindNumberLiteral, NumBase: lang.NumberDecimal}
	}
}

// lexTextLiteral scans a Pascal string literal, including the '' escaped
// quote and any directly-concatenated '#'-prefixed character escapes
// (decimal, '$' hex, or '%' binary). Three or more consecutive quotes open
// a multi-line string literal, closed by a line holding the same run of
// quotes; the trailing-quote line's leading whitespace is the literal's
// base indentation, used later by the multiline-string reindenter.
func (l *Lexer) lexTextLiteral() token.Token {
	if l.quoteRunLength() >= 3 {
		return l.lexMultilineTextLiteral()
	}
	unterminated := false
	for {
		if l.pos < len(l.src) && l.src[l.pos] == '\'' {
			l.advanceByte()
			for l.pos < len(l.src) {
				if l.src[l.pos] == '\'' {
					l.advanceByte()
					if l.pos < len(l.src) && l.src[l.pos] == '\'' {
						l.advanceByte() // escaped quote, keep scanning
						continue
					}
					break
				}
				if l.src[l.pos] == '\n' {
					l.warn("unterminated string literal")
					unterminated = true
					break
				}
				l.advanceByte()
			}
		} else if l.pos < len(l.src) && l.src[l.pos] == '#' {
			l.advanceByte()
			switch l.peekByte(0) {
			case '$':
				l.advanceByte()
				for l.pos < len(l.src) && isHexDigit(l.src[l.pos]) {
					l.advanceByte()
				}
			case '%':
				l.advanceByte()
				for l.pos < len(l.src) && (l.src[l.pos] == '0' || l.src[l.pos] == '1') {
					l.advanceByte()
				}
			default:
				for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
					l.advanceByte()
				}
			}
		} else {
			break
		}
		if l.pos >= len(l.src) || (l.src[l.pos] != '\'' && l.src[l.pos] != '#') {
			break
		}
	}
	if unterminated {
		return token.Token{Kind: lang.KindTextLiteral, TextKind: lang.TextLiteralUnterminated}
	}
	return token.Token{Kind: lang.KindTextLiteral, TextKind: lang.TextLiteralPascal}
}

// quoteRunLength reports how many consecutive ' characters start at the
// current position, without consuming them.
func (l *Lexer) quoteRunLength() int {
	n := 0
	for l.pos+n < len(l.src) && l.src[l.pos+n] == '\'' {
		n++
	}
	return n
}

// lexMultilineTextLiteral scans a triple-quoted (or longer) multi-line
// string literal: the opening quote run, then every line verbatim up to
// and including a closing line consisting of leading whitespace followed
// by the same number of quote characters.
func (l *Lexer) lexMultilineTextLiteral() token.Token {
	quoteLen := l.quoteRunLength()
	for i := 0; i < quoteLen; i++ {
		l.advanceByte()
	}
	closing := repeatByte('\'', quoteLen)
	for l.pos < len(l.src) {
		lineStart := l.pos
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.advanceByte()
		}
		line := l.src[lineStart:l.pos]
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, closing) {
			return token.Token{Kind: lang.KindTextLiteral, TextKind: lang.TextLiteralMultiLine}
		}
		if l.pos < len(l.src) {
			l.advanceByte() // consume the newline, keep scanning
		}
	}
	l.warn("unterminated multi-line string literal")
	return token.Token{Kind: lang.KindTextLiteral, TextKind: lang.TextLiteralUnterminated}
}

func repeatByte(b byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return string(buf)
}

// lexAsmTextLiteral scans a double-quoted asm string, where '\' escapes
// the following character.
func (l *Lexer) lexAsmTextLiteral() token.Token {
	l.advanceByte() // opening quote
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '\\' {
			l.advanceByte()
			if l.pos < len(l.src) {
				l.advanceByte()
			}
			continue
		}
		if ch == '"' {
			l.advanceByte()
			return token.Token{Kind: lang.KindTextLiteral, TextKind: lang.TextLiteralAsm}
		}
		if ch == '\n' {
			l.warn("unterminated asm string literal")
			return token.Token{Kind: lang.KindTextLiteral, TextKind: lang.TextLiteralUnterminated}
		}
		l.advanceByte()
	}
	return token.Token{Kind: lang.KindTextLiteral, TextKind: lang.TextLiteralAsm}
}

func (l *Lexer) lexSlash(hadNewlineBefore bool) token.Token {
	if l.peekByte(1) == '/' {
		l.advanceByte()
		l.advanceByte()
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.advanceByte()
		}
		kind := lang.CommentInlineLine
		if hadNewlineBefore || l.isFirst {
			kind = lang.CommentIndividualLine
		}
		return token.Token{Kind: lang.KindComment, Comment: kind}
	}
	l.advanceByte()
	return token.Token{Kind: lang.KindOperator, Op: lang.OpSlash}
}

func (l *Lexer) lexDot() token.Token {
	l.advanceByte()
	switch l.peekByte(0) {
	case '.':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpDotDot}
	case ')':
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpRBrack}
	default:
		return token.Token{Kind: lang.KindOperator, Op: lang.OpDot}
	}
}

func (l *Lexer) lexLParenOrComment(hadNewlineBefore bool) token.Token {
	if l.peekByte(1) == '*' {
		return l.lexParenStarComment(hadNewlineBefore)
	}
	if l.peekByte(1) == '.' {
		l.advanceByte()
		l.advanceByte()
		return token.Token{Kind: lang.KindOperator, Op: lang.OpLBrack}
	}
	l.advanceByte()
	return token.Token{Kind: lang.KindOperator, Op: lang.OpLParen}
}

// lexBraceComment scans a '{'-delimited block, classifying it as a
// compiler/conditional directive when immediately followed by '$', or as
// a plain comment otherwise.
func (l *Lexer) lexBraceComment(hadNewlineBefore bool) token.Token {
	start := l.pos
	l.advanceByte() // '{'
	isDirective := l.peekByte(0) == '$'
	for l.pos < len(l.src) && l.src[l.pos] != '}' {
		l.advanceByte()
	}
	if l.pos < len(l.src) {
		l.advanceByte() // '}'
	} else {
		l.warn("unterminated comment or directive")
	}
	return l.classifyBraceLike(start, isDirective, hadNewlineBefore)
}

func (l *Lexer) lexParenStarComment(hadNewlineBefore bool) token.Token {
	start := l.pos
	l.advanceByte() // '('
	l.advanceByte() // '*'
	isDirective := l.peekByte(0) == '$'
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peekByte(1) == ')' {
			break
		}
		l.advanceByte()
	}
	if l.pos < len(l.src) {
		l.advanceByte()
		l.advanceByte()
	} else {
		l.warn("unterminated comment or directive")
	}
	return l.classifyBraceLike(start, isDirective, hadNewlineBefore)
}

func (l *Lexer) classifyBraceLike(start int, isDirective, hadNewlineBefore bool) token.Token {
	content := l.src[start:l.pos]
	if isDirective {
		dk := directiveWord(content)
		if dk != lang.DirectiveNone {
			return token.Token{Kind: lang.KindConditionalDirective, Dir: dk}
		}
		return token.Token{Kind: lang.KindCompilerDirective}
	}
	var kind lang.CommentKind
	switch {
	case containsNewline(content):
		kind = lang.CommentMultilineBlock
	case hadNewlineBefore || l.isFirst:
		kind = lang.CommentIndividualBlock
	default:
		kind = lang.CommentInlineBlock
	}
	return token.Token{Kind: lang.KindComment, Comment: kind}
}

// directiveWord extracts the identifier immediately following the '$' in a
// {$...}/(*$...*) directive and classifies it against the conditional
// directive keywords (if/ifdef/ifndef/ifopt/elseif/else/ifend/endif),
// case-insensitively. Anything else yields DirectiveNone (a plain
// compiler directive).
func directiveWord(content string) lang.DirectiveKind {
	i := 0
	for i < len(content) && content[i] != '$' {
		i++
	}
	if i >= len(content) {
		return lang.DirectiveNone
	}
	i++ // skip '$'
	j := i
	for j < len(content) && isIdentPartByte(content[j]) {
		j++
	}
	return lang.DirectiveKindFromWord(content[i:j])
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Decimal, hex, and binary numeric literals allow '_' as a digit-group
// separator anywhere in their body (spec.md §4.1); these three predicates
// add that allowance on top of the base digit class, kept separate from
// isDigit/isHexDigit since asm numbers and octal '&' literals don't.
func isDecimalDigitOrSep(b byte) bool { return isDigit(b) || b == '_' }
func isHexDigitOrSep(b byte) bool     { return isHexDigit(b) || b == '_' }
func isBinaryDigitOrSep(b byte) bool  { return b == '0' || b == '1' || b == '_' }
func isIdentPartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b) || b >= 0x80
}
