package format

import (
	"strings"

	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// LowercaseKeywords lowercases every keyword token's content, leaving
// identifiers (including impure keywords the parser never promoted) and
// ignored tokens untouched.
func LowercaseKeywords(toks []token.Token) {
	for i := range toks {
		tk := &toks[i]
		if tk.Ignored || tk.Kind != lang.KindKeyword {
			continue
		}
		if hasASCIIUpper(tk.Content) {
			tk.SetContent(strings.ToLower(tk.Content))
		}
	}
}

func hasASCIIUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}
