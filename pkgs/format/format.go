// Package format implements the formatting engine's rules: the token-local
// formatters (keyword casing, comment content, directive casing, multiline
// string reindentation) and the optimising line formatter that assigns
// every token's line breaks and indentation.
package format

import (
	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/diag"
	"github.com/pasfmt/pasfmt/pkgs/logicalline"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// Apply runs every formatting rule over toks in the order layout decisions
// must precede content rewrites that depend on them (multiline string
// reindentation reads each token's already-assigned indentation).
func Apply(toks []token.Token, lines []logicalline.Line, cfg config.FormattingConfig) []diag.Diagnostic {
	LowercaseKeywords(toks)
	FormatCommentsAndDirectives(toks)
	diags := AssignLineBreaks(lines, toks, cfg)
	return append(diags, ReindentMultilineStrings(toks, cfg.Reconstruction)...)
}
