// Package logicalline groups a token stream into logical lines: the units
// the formatting engine lays out and breaks independently. Grouping runs
// once per directive-tree pass (so every branch of every conditional gets
// classified), and the per-pass results are merged by picking, for every
// logical line, the earliest pass that produced it.
package logicalline

import (
	"sort"

	"github.com/pasfmt/pasfmt/pkgs/directive"
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// Line is one logical line: a flat run of token indices (into the whole
// stream) that the formatter lays out as a unit, at a given nesting Level,
// with an optional ParentToken identifying the enclosing block's opening
// token (-1 at the top level).
type Line struct {
	Kind        lang.LineKind
	Level       int
	ParentToken int
	Tokens      []int
}

// Parse groups toks into logical lines, driving the directive tree's pass
// iterator so that every branch of every conditional is classified, then
// merging the results and reclassifying any context-sensitive keyword
// tokens the grammar resolves along the way (KwAbsolute inside a var
// declaration, visibility specifiers, routine/property directive tails,
// and so on).
func Parse(toks []token.Token) []Line {
	tree := directive.Build(toks)
	it := tree.Passes()
	var passes [][]Line
	for {
		ranges, ok := it.Next()
		if !ok {
			break
		}
		passes = append(passes, parseOnePass(toks, expandRanges(ranges)))
	}
	lines := mergePasses(passes)
	reclassifyKeywords(toks, lines)
	return appendEofLine(toks, lines)
}

// appendEofLine adds the trailing Eof line for the lexer's end-of-file
// sentinel token, which the directive tree's pass ranges never include
// (every pass treats it as the boundary that ends the token stream, not
// content to visit).
func appendEofLine(toks []token.Token, lines []Line) []Line {
	if len(toks) == 0 {
		return lines
	}
	last := len(toks) - 1
	if toks[last].Kind != lang.KindEOF {
		return lines
	}
	return append(lines, Line{Kind: lang.LineEof, Level: 0, ParentToken: -1, Tokens: []int{last}})
}

func expandRanges(ranges []directive.Range) []int {
	var out []int
	for _, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			out = append(out, i)
		}
	}
	return out
}

// mergePasses keeps, for each token index, only the line produced by the
// earliest pass to claim it. A later pass's line that overlaps tokens an
// earlier pass already claimed for a different line isn't simply omitted:
// it is replaced with a Voided line carrying no tokens, the only way a
// line is erased once the parser has produced it (spec.md's closed line
// kind set reserves Voided exactly for this). Lines are returned in
// document order.
func mergePasses(passes [][]Line) []Line {
	claimed := make(map[int]bool)
	type entry struct {
		line Line
		key  int
	}
	var entries []entry
	for _, pass := range passes {
		for _, ln := range pass {
			if len(ln.Tokens) == 0 {
				continue
			}
			mn := minIndex(ln.Tokens)
			if overlapsClaimed(ln.Tokens, claimed) {
				entries = append(entries, entry{Void(ln), mn})
				continue
			}
			for _, t := range ln.Tokens {
				claimed[t] = true
			}
			entries = append(entries, entry{ln, mn})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	out := make([]Line, len(entries))
	for i, e := range entries {
		out[i] = e.line
	}
	return out
}

func minIndex(idxs []int) int {
	mn := idxs[0]
	for _, t := range idxs {
		if t < mn {
			mn = t
		}
	}
	return mn
}

func overlapsClaimed(idxs []int, claimed map[int]bool) bool {
	for _, t := range idxs {
		if claimed[t] {
			return true
		}
	}
	return false
}

// Void erases ln post-parse: per spec.md, a Voided line carries no tokens
// and is the only legal way to discard a line once the parser has
// produced it, as opposed to never emitting one in the first place.
func Void(ln Line) Line {
	return Line{Kind: lang.LineVoided, Level: ln.Level, ParentToken: ln.ParentToken}
}
