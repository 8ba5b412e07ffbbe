// Package ignorer implements the formatting on/off toggle: it recognises
// the literal comment content "pasfmt off" and "pasfmt on" and marks every
// token between a matching off/on pair as frozen, so every later stage
// leaves it untouched and the reconstructor emits it verbatim.
package ignorer

import (
	"strings"

	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

const (
	offMarker = "pasfmt off"
	onMarker  = "pasfmt on"
)

// Mark scans toks for {pasfmt off}/{pasfmt on} pairs (or the equivalent
// line-comment form) and sets Token.Ignored on every token from the off
// marker (inclusive) up to but not including the matching on marker. An
// unterminated off range extends to the end of the stream. Conditional
// directive tokens inside a frozen range are still marked ignored for
// reconstruction even though they remain visible to the directive tree.
func Mark(toks []token.Token) {
	frozen := false
	for i := range toks {
		tk := &toks[i]
		if frozen {
			tk.Ignored = true
		}
		if tk.Kind != lang.KindComment {
			continue
		}
		switch commentDirective(tk.Content) {
		case offMarker:
			tk.Ignored = true
			frozen = true
		case onMarker:
			frozen = false
			// the "on" marker itself is excluded from the frozen range.
		}
	}
}

// commentDirective extracts the trimmed body of a "{...}"/"(*...*)"/"//..."
// comment token, for case-sensitive comparison against offMarker/onMarker.
func commentDirective(content string) string {
	body := content
	switch {
	case strings.HasPrefix(body, "{") && strings.HasSuffix(body, "}"):
		body = body[1 : len(body)-1]
	case strings.HasPrefix(body, "(*") && strings.HasSuffix(body, "*)"):
		body = body[2 : len(body)-2]
	case strings.HasPrefix(body, "//"):
		body = body[2:]
	default:
		return ""
	}
	return strings.TrimSpace(body)
}
