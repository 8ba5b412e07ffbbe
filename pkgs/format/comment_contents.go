package format

import (
	"strings"

	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// FormatCommentsAndDirectives normalises line-comment leading space and
// upper-cases the directive word (or switch letter block) of compiler and
// conditional directives, skipping ignored tokens and block comments
// (whose interior is left untouched, matching the teacher's "not yet
// supported" stance on block comment reformatting).
func FormatCommentsAndDirectives(toks []token.Token) {
	for i := range toks {
		tk := &toks[i]
		if tk.Ignored {
			continue
		}
		switch tk.Kind {
		case lang.KindCompilerDirective, lang.KindConditionalDirective:
			formatCompilerDirective(tk)
		case lang.KindComment:
			if tk.Comment == lang.CommentInlineLine || tk.Comment == lang.CommentIndividualLine {
				formatLineComment(tk)
			}
		}
	}
}

// commentIsSeparator reports whether a line comment's body is a run of ten
// or more identical non-alphanumeric characters ("//----------"), which is
// left alone rather than space-padded.
func commentIsSeparator(comment string) bool {
	comment = strings.TrimRight(comment, " \t\n\r\v\f")
	if len(comment) < 10 {
		return false
	}
	first := rune(comment[0])
	if isAlnum(byte(first)) {
		return false
	}
	for i := 1; i < len(comment); i++ {
		if comment[i] != comment[0] {
			return false
		}
	}
	return true
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func formatLineComment(tk *token.Token) {
	content := tk.Content
	rest, ok := strings.CutPrefix(content, "//")
	if !ok {
		return
	}
	comment := rest
	if stripped, ok := strings.CutPrefix(comment, "/"); ok {
		comment = stripped // doc comments carry an extra slash
	}

	var newContent string
	changed := false
	if len(comment) > 0 && !isASCIISpace(comment[0]) && !commentIsSeparator(comment) {
		newContent = content[:len(content)-len(comment)] + " " + comment
		changed = true
	} else {
		newContent = content
	}

	trimmed := strings.TrimRight(content, " \t\n\r\v\f")
	if trimmed != content {
		if !changed {
			newContent = content
		}
		newContent = strings.TrimRight(newContent, " \t\n\r\v\f")
		changed = true
	}

	if changed {
		tk.SetContent(newContent)
	}
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// formatCompilerDirective upper-cases the directive word of a "{$...}" or
// "(*$...*)" directive: a simple word ("{$define foo}"), a switch letter
// optionally followed by digits ("{$a16}"), or a batch of comma-separated
// switches ("{$o+,r-,b+}"). Anything that doesn't parse as one of those
// shapes (an expression directive, or one with unusual punctuation) is
// left untouched.
func formatCompilerDirective(tk *token.Token) {
	content := tk.Content
	var prefixLen int
	switch {
	case strings.HasPrefix(content, "{$"):
		prefixLen = 2
	case strings.HasPrefix(content, "(*$"):
		prefixLen = 3
	default:
		return
	}
	stripped := content[prefixLen:]

	type state int
	const (
		before state = iota
		afterPlusMinus
		afterDigit
		afterComma
		afterLetter
		afterWord
	)

	st := before
	isSwitch := false
	directiveLen := 0
	invalid := false

loop:
	for i := 0; i < len(stripped); i++ {
		b := stripped[i]
		switch {
		case (st == before || st == afterComma) && isAsciiAlpha(b):
			st = afterLetter
		case st == afterLetter && (b == '+' || b == '-'):
			st = afterPlusMinus
			isSwitch = true
		case (st == afterPlusMinus || st == afterDigit) && b == ',':
			st = afterComma
		case (st == afterLetter || st == afterDigit) && isDigit(b):
			st = afterDigit
			isSwitch = true
		case (st == afterLetter || st == afterWord) && !isSwitch && (isAsciiAlpha(b) || isDigit(b) || b == '_'):
			st = afterWord
		case st == afterLetter && b == ',':
			invalid = true
			break loop
		case st == afterComma || st == afterLetter:
			invalid = true
			break loop
		default:
			break loop
		}
		directiveLen++
	}

	if invalid {
		return
	}
	directive := stripped[:directiveLen]
	if !hasASCIILower(directive) {
		return
	}
	prefix := content[:len(content)-len(stripped)]
	rest := stripped[len(directive):]
	tk.SetContent(prefix + strings.ToUpper(directive) + rest)
}

func isAsciiAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool      { return b >= '0' && b <= '9' }

func hasASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			return true
		}
	}
	return false
}
