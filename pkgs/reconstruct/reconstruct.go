// Package reconstruct walks a formatted token stream back into text: the
// last stage of the pipeline, consuming the layout decisions every earlier
// stage attached to each token.
package reconstruct

import (
	"strings"

	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// Reconstruct composes the final text for toks in index order. A token
// whose formatting data is ignored emits its original raw bytes (leading
// whitespace included) verbatim; every other token emits whitespace
// composed from its formatting data followed by its (possibly rewritten)
// content. No bytes are inserted after the final token beyond what that
// token's own formatting data specifies.
func Reconstruct(toks []token.Token, settings config.ReconstructionSettings) string {
	var b strings.Builder
	for i := range toks {
		tk := &toks[i]
		if tk.Ignored {
			b.WriteString(tk.Raw)
			continue
		}
		writeWhitespace(&b, tk, settings)
		b.WriteString(tk.Text())
	}
	return b.String()
}

func writeWhitespace(b *strings.Builder, tk *token.Token, settings config.ReconstructionSettings) {
	for n := uint32(0); n < tk.NewlinesBefore; n++ {
		b.WriteString(settings.Newline)
	}
	for n := uint32(0); n < tk.IndentationsBefore; n++ {
		b.WriteString(settings.IndentUnit)
	}
	for n := uint32(0); n < tk.ContinuationsBefore; n++ {
		b.WriteString(settings.Continuation)
	}
	for n := uint32(0); n < tk.SpacesBefore; n++ {
		b.WriteByte(' ')
	}
}
