// Package formatter wires the pipeline stages together: lex, mark ignored
// ranges, group logical lines, run the formatting rules, reconstruct text.
// It is the one entry point the CLI layer calls per file.
package formatter

import (
	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/diag"
	"github.com/pasfmt/pasfmt/pkgs/format"
	"github.com/pasfmt/pasfmt/pkgs/ignorer"
	"github.com/pasfmt/pasfmt/pkgs/lexer"
	"github.com/pasfmt/pasfmt/pkgs/logicalline"
	"github.com/pasfmt/pasfmt/pkgs/reconstruct"
)

// Format runs the full pipeline over src and returns the formatted text
// together with every diagnostic raised along the way. It never itself
// returns an error: a lexical problem (an unterminated literal, an
// overflowed whitespace run) is reported as a diagnostic and formatting
// continues on a best-effort basis, matching the teacher's own
// err_handler-as-sink style rather than aborting the run.
func Format(src string, cfg config.FormattingConfig) (string, []diag.Diagnostic) {
	toks, diags := lexer.Lex(src)

	ignorer.Mark(toks)
	lines := logicalline.Parse(toks)

	diags = append(diags, format.Apply(toks, lines, cfg)...)

	return reconstruct.Reconstruct(toks, cfg.Reconstruction), diags
}

// IsIdempotent reports whether formatting out again reproduces it
// byte-for-byte, the idempotence property spec.md's reconstructor
// guarantees for any already-formatted input.
func IsIdempotent(out string, cfg config.FormattingConfig) bool {
	again, _ := Format(out, cfg)
	return again == out
}
