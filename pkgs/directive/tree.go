// Package directive builds the DirectiveTree that schedules how a token
// stream containing conditional-compilation directives ({$if}/{$ifdef}/...)
// is visited across one or more passes, so every branch of every
// conditional gets classified by the logical line parser at least once
// (a nested section's last branch is revisited once all its branches are
// explored), and every non-directive token is visited in at least one pass. This is a
// direct port of the reference implementation's directive_tree algorithm.
package directive

import (
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// Range is a half-open [Start, End) span of token indices.
type Range struct {
	Start, End int
}

type sectionKind uint8

const (
	sectionFlat sectionKind = iota
	sectionNested
)

// section is either a flat run of tokens not containing any further
// conditional nesting, or a nested conditional with one sub-tree per
// branch (if/elseif.../else).
type section struct {
	kind     sectionKind
	explored bool

	flat Range

	branches []*Tree

	// hasTrailing/trailing record the closing "$endif"/"$ifend" directive
	// token's own index, when one was matched. It is visited alongside
	// whichever branch a pass takes, so it ends up in every pass's output
	// (mergePasses voids the later passes' copies of that single-token line).
	hasTrailing bool
	trailing    Range
}

// Tree is a directive tree over a single token stream: the top level is a
// sequence of sections, each either a flat token range or a nested
// conditional with its own sub-trees for each branch.
type Tree struct {
	sections []*section
}

// Build parses toks into a DirectiveTree. Every token is either folded
// into a flat section or consumed as part of a conditional directive that
// opens/continues/closes a nested section. Unmatched "else"/"elseif" or
// "endif"/"ifend" tokens at the top level are folded into the surrounding
// flat run rather than treated as errors, matching the "never fails"
// contract every stage in this repository upholds.
func Build(toks []token.Token) *Tree {
	p := &parser{toks: toks}
	return &Tree{sections: p.parseSections(true)}
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) || p.toks[p.pos].IsEOF() }

func (p *parser) isConditional() bool {
	return !p.atEnd() && p.toks[p.pos].Kind == lang.KindConditionalDirective
}

// parseSections parses a sequence of sections: a flat run of non-directive
// tokens, followed either by a nested conditional (consumed recursively)
// or by the directive that ends this sequence. At the top level an
// unmatched "else"/"elseif"/"endif"/"ifend" is swallowed into the flat run
// and parsing continues; when nested, such a token ends the sequence
// without being consumed, so the caller (parseNestedSection) can inspect
// it.
func (p *parser) parseSections(topLevel bool) []*section {
	var out []*section
	for {
		flatStart := p.pos
		for !p.atEnd() && !p.isConditional() {
			p.pos++
		}
		if p.pos > flatStart {
			out = append(out, &section{kind: sectionFlat, flat: Range{flatStart, p.pos}})
		}
		if p.atEnd() {
			return out
		}
		dk := p.toks[p.pos].Dir
		if dk.IsElse() || dk.IsClosing() {
			if !topLevel {
				return out
			}
			p.pos++
			out = append(out, &section{kind: sectionFlat, flat: Range{p.pos - 1, p.pos}})
			continue
		}
		out = append(out, p.parseNestedSection())
	}
}

// parseNestedSection consumes one "$if"-family opener (the parser is
// positioned on it), every subsequent "$elseif"/"$else" sibling, and the
// closing "$endif"/"$ifend" if present, producing one branch Tree per arm.
// Every directive token consumed here (opener, each elseif/else, and the
// closer) is recorded as a single-token flat range of its own, so it still
// ends up assigned to a ConditionalDirective logical line instead of
// vanishing from the pass's token partition.
func (p *parser) parseNestedSection() *section {
	var branches []*Tree
	for {
		openerIdx := p.pos
		p.pos++ // consume the opener/else/elseif directive token itself
		opener := &section{kind: sectionFlat, flat: Range{openerIdx, openerIdx + 1}}
		branchSections := append([]*section{opener}, p.parseSections(false)...)
		branches = append(branches, &Tree{sections: branchSections})
		if p.atEnd() {
			return &section{kind: sectionNested, branches: branches}
		}
		dk := p.toks[p.pos].Dir
		if dk.IsElse() {
			continue
		}
		if dk.IsClosing() {
			closeIdx := p.pos
			p.pos++ // consume endif/ifend
			return &section{
				kind: sectionNested, branches: branches,
				hasTrailing: true, trailing: Range{closeIdx, closeIdx + 1},
			}
		}
		return &section{kind: sectionNested, branches: branches}
	}
}

// Explored reports whether every section of the tree (recursively) has
// been visited by at least one pass. A flat section tracks its own
// explored flag directly; a nested section has none of its own (visiting
// it means visiting one branch, not "it"), so it's explored exactly when
// every one of its branches is.
func (t *Tree) Explored() bool {
	for _, s := range t.sections {
		switch s.kind {
		case sectionFlat:
			if !s.explored {
				return false
			}
		case sectionNested:
			for _, b := range s.branches {
				if !b.Explored() {
					return false
				}
			}
		}
	}
	return true
}

// Pass appends one pass's worth of token ranges to out: every flat section
// not yet explored is visited and marked explored; every nested section
// recurses into its first unexplored branch, falling back to the last
// branch once all branches are explored.
func (t *Tree) Pass(out *[]Range) {
	for _, s := range t.sections {
		s.visit(out)
	}
}

func (s *section) visit(out *[]Range) {
	switch s.kind {
	case sectionFlat:
		*out = append(*out, s.flat)
		s.explored = true
	case sectionNested:
		branch := s.firstUnexploredOrLast()
		branch.Pass(out)
		if s.hasTrailing {
			*out = append(*out, s.trailing)
		}
	}
}

func (s *section) firstUnexploredOrLast() *Tree {
	for _, b := range s.branches {
		if !b.Explored() {
			return b
		}
	}
	return s.branches[len(s.branches)-1]
}

// PassIter drives repeated calls to Tree.Pass until the whole tree has
// been explored.
type PassIter struct {
	tree      *Tree
	exhausted bool
}

// Passes returns an iterator over t. It is safe to fully drain.
func (t *Tree) Passes() *PassIter {
	return &PassIter{tree: t}
}

// Next returns the next pass's token ranges, or (nil, false) once every
// section has been visited.
func (it *PassIter) Next() ([]Range, bool) {
	if it.exhausted {
		return nil, false
	}
	var out []Range
	it.tree.Pass(&out)
	if it.tree.Explored() {
		it.exhausted = true
	}
	return out, true
}
