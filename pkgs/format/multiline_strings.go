package format

import (
	"strings"

	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/diag"
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// ReindentMultilineStrings rewrites every TextLiteralMultiLine token's
// interior to match the indentation the optimiser chose for it: each
// internal line has the trailing-quote line's leading whitespace prefix
// stripped and replaced with the token's own IndentationsBefore/
// ContinuationsBefore counts, rendered with the configured indent and
// continuation units. Must run after line-break assignment, since it
// reads the token's own (already decided) indentation.
func ReindentMultilineStrings(toks []token.Token, settings config.ReconstructionSettings) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for i := range toks {
		tk := &toks[i]
		if tk.Ignored || tk.Kind != lang.KindTextLiteral || tk.TextKind != lang.TextLiteralMultiLine {
			continue
		}
		content := tk.Content
		lines := splitLinesKeepingTerminators(content)
		if len(lines) == 0 {
			continue
		}
		lastLine := stripTerminator(lines[len(lines)-1])
		baseIndent := lastLine[:countLeadingWhitespace(lastLine)]
		newContent, ok := rewriteMultilineString(lines, baseIndent, tk, settings)
		if !ok {
			diags = append(diags, diag.Warnf(tk.Line, tk.Column, "multiline string body does not match its trailing quote indentation"))
			continue
		}
		if newContent != content {
			tk.SetContent(newContent)
		}
	}
	return diags
}

func rewriteMultilineString(lines []string, baseIndent string, tk *token.Token, settings config.ReconstructionSettings) (string, bool) {
	var b strings.Builder
	b.WriteString(stripTerminator(lines[0]))
	for _, raw := range lines[1:] {
		line := stripTerminator(raw)
		b.WriteString(settings.Newline)

		stripped, ok := strings.CutPrefix(line, baseIndent)
		if !ok {
			if strings.HasPrefix(baseIndent, line) {
				// a strict prefix of the trailing indentation is allowed to
				// stand for an otherwise-empty internal line.
				continue
			}
			return "", false
		}
		if stripped == "" {
			continue
		}
		for n := uint32(0); n < tk.IndentationsBefore; n++ {
			b.WriteString(settings.IndentUnit)
		}
		for n := uint32(0); n < tk.ContinuationsBefore; n++ {
			b.WriteString(settings.Continuation)
		}
		b.WriteString(stripped)
	}
	return b.String(), true
}

// splitLinesKeepingTerminators splits s on \n, \r, and \r\n, keeping each
// terminator attached to the line that precedes it so stripTerminator can
// recover the unterminated remainder deterministically.
func splitLinesKeepingTerminators(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				lines = append(lines, s[start:i+2])
				start = i + 2
				i++
			} else {
				lines = append(lines, s[start:i+1])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func stripTerminator(s string) string {
	return strings.TrimRight(s, "\r\n")
}

func countLeadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}
