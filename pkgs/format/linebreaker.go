package format

import (
	"container/heap"

	"github.com/pasfmt/pasfmt/pkgs/config"
	"github.com/pasfmt/pasfmt/pkgs/diag"
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/logicalline"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// widthPenaltyFactor scales the cost of letting a rendered line run past
// cfg.MaxLineLength; breakCostFor below scales the cost of taking a break
// instead, context by context, so the search trades one against the other.
const widthPenaltyFactor = 2

// AssignLineBreaks decides, per token, whether it starts a new line and how
// deeply it is indented: the optimising line formatter of spec.md. Each
// logical line is solved independently by building its context stack
// (buildContextData), deriving a Must-Break/Must-Not-Break/Indifferent
// Requirement per token boundary (requirementFor), and running a
// best-first priority-queue search over the resulting decision tree,
// minimising a penalty built from how far a line's rendered width runs
// past the configured target plus a context-weighted cost per break taken.
// A line the search can't resolve within its iteration budget (a genuine
// contradiction between invariants, which the rules below are built to
// avoid, or pathological token counts) is laid out by applyFallback and
// raises a diagnostic instead of hanging. The fallback does not restore
// the line's original whitespace: it keeps the line on one physical line
// except where a hard invariant forces a break.
func AssignLineBreaks(lines []logicalline.Line, toks []token.Token, cfg config.FormattingConfig) []diag.Diagnostic {
	var diags []diag.Diagnostic
	first := true
	for _, ln := range lines {
		if len(ln.Tokens) == 0 {
			continue
		}
		decisions, ok := solveLine(toks, ln.Tokens, ln.Kind, ln.Level, cfg)
		if !ok {
			ftok := &toks[ln.Tokens[0]]
			diags = append(diags, diag.Warnf(ftok.Line, ftok.Column,
				"optimising line formatter did not converge, using fallback layout"))
		}
		for i, idx := range ln.Tokens {
			tk := &toks[idx]
			if tk.Ignored {
				continue
			}
			if i == 0 {
				if first {
					tk.NewlinesBefore = 0
				} else {
					tk.NewlinesBefore = 1
				}
				tk.IndentationsBefore = uint32(ln.Level)
				tk.ContinuationsBefore = 0
				tk.SpacesBefore = 0
			} else if ok {
				applyDecision(toks, idx, ln.Tokens[i-1], ln.Level, decisions[i])
			} else {
				applyFallback(toks, idx, ln.Tokens[i-1], ln.Level)
			}
			first = false
		}
	}
	return diags
}

// breakDecision is one resolved token boundary: whether idx breaks onto a
// new physical line and, if so, how many continuation units deep.
type breakDecision struct {
	breakBefore   bool
	continuations int
}

// searchNode is one partial solution in the best-first search: every
// token up to pos has a decision, penalty is its accumulated cost, and
// lineLen is the rendered width of the current physical line so far (reset
// at the last break taken).
type searchNode struct {
	pos       int
	penalty   int
	lineLen   int
	decisions []breakDecision
}

type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].penalty != h[j].penalty {
		return h[i].penalty < h[j].penalty
	}
	return h[i].pos > h[j].pos // prefer more-complete nodes among equal-penalty ties
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*searchNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func extendNode(cur *searchNode, d breakDecision, penalty, lineLen int) *searchNode {
	nd := make([]breakDecision, cur.pos+1)
	copy(nd, cur.decisions)
	nd[cur.pos] = d
	return &searchNode{pos: cur.pos + 1, penalty: penalty, lineLen: lineLen, decisions: nd}
}

// solveLine runs the best-first search over one logical line's tokens.
// decisions[0] is unused; the line's own first token always starts the
// line and is positioned by AssignLineBreaks directly. ok is false only on
// non-convergence (the search's iteration budget ran out before any
// complete node was popped).
func solveLine(toks []token.Token, idxs []int, kind lang.LineKind, level int, cfg config.FormattingConfig) ([]breakDecision, bool) {
	n := len(idxs)
	if n <= 1 {
		return make([]breakDecision, n), true
	}

	target := cfg.MaxLineLength
	if target <= 0 {
		target = 120
	}
	indentW := runeLen(cfg.Reconstruction.IndentUnit)
	contW := runeLen(cfg.Reconstruction.Continuation)
	baseIndent := level * indentW

	cd := buildContextData(toks, idxs, kind, target, baseIndent)

	start := &searchNode{pos: 1, penalty: 0, lineLen: baseIndent + runeLenText(&toks[idxs[0]]), decisions: make([]breakDecision, 1)}
	h := &nodeHeap{start}
	heap.Init(h)

	maxIter := 6*n + 64
	for iter := 0; h.Len() > 0 && iter < maxIter; iter++ {
		cur := heap.Pop(h).(*searchNode)
		if cur.pos == n {
			return cur.decisions, true
		}
		pos := cur.pos
		req := requirementFor(toks, idxs, pos, cd)
		tk := &toks[idxs[pos]]
		tokWidth := runeLenText(tk)

		if req != ReqMustBreak {
			sp := 1
			if noSpaceBefore(tk) || noSpaceAfter(&toks[idxs[pos-1]]) {
				sp = 0
			}
			newLen := cur.lineLen + sp + tokWidth
			penalty := cur.penalty
			if newLen > target {
				penalty += (newLen - target) * widthPenaltyFactor
			}
			heap.Push(h, extendNode(cur, breakDecision{breakBefore: false}, penalty, newLen))
		}
		if req != ReqMustNotBreak {
			cont := cd.depth[pos] + 1
			newLen := baseIndent + cont*contW + tokWidth
			heap.Push(h, extendNode(cur, breakDecision{breakBefore: true, continuations: cont}, cur.penalty+breakCostFor(cd, pos), newLen))
		}
	}
	return nil, false
}

// breakCostFor weights how expensive taking a break is by what context it
// happens in: breaking inside a tight operator-precedence group costs far
// more than breaking a top-level statement or directive-list separator,
// so the search only elects the former when width pressure leaves no
// cheaper option.
func breakCostFor(cd contextData, pos int) int {
	switch cd.enclosing[pos].kind {
	case ctxPrecedence:
		return 40
	case ctxBracketRound, ctxBracketSquare:
		return 15
	case ctxDirectiveList:
		return 10
	default:
		return 5
	}
}

func applyDecision(toks []token.Token, idx, prevIdx, level int, d breakDecision) {
	tk := &toks[idx]
	if d.breakBefore {
		tk.NewlinesBefore = 1
		tk.IndentationsBefore = uint32(level)
		tk.ContinuationsBefore = uint32(d.continuations)
		tk.SpacesBefore = 0
		return
	}
	tk.NewlinesBefore = 0
	tk.IndentationsBefore = 0
	tk.ContinuationsBefore = 0
	prev := &toks[prevIdx]
	if noSpaceBefore(tk) || noSpaceAfter(prev) {
		tk.SpacesBefore = 0
	} else {
		tk.SpacesBefore = 1
	}
}

// applyFallback lays out a token the same simple way the rest of the line
// was laid out before this formatter grew the real search: only the hard
// invariants force a break, everything else stays on one line. Used solely
// when the search itself didn't converge.
func applyFallback(toks []token.Token, idx, prevIdx, level int) {
	tk := &toks[idx]
	prev := &toks[prevIdx]
	if req, ok := formattingInvariant(prev, tk); ok && req == ReqMustBreak {
		tk.NewlinesBefore = 1
		tk.IndentationsBefore = uint32(level)
		tk.ContinuationsBefore = 1
		tk.SpacesBefore = 0
		return
	}
	tk.NewlinesBefore = 0
	tk.IndentationsBefore = 0
	tk.ContinuationsBefore = 0
	if noSpaceBefore(tk) || noSpaceAfter(prev) {
		tk.SpacesBefore = 0
	} else {
		tk.SpacesBefore = 1
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 2
	}
	return n
}

func runeLenText(tk *token.Token) int {
	n := 0
	for range tk.Text() {
		n++
	}
	return n
}

func noSpaceBefore(tk *token.Token) bool {
	if tk.Kind != lang.KindOperator {
		return false
	}
	switch tk.Op {
	case lang.OpComma, lang.OpSemicolon, lang.OpRParen, lang.OpRBrack, lang.OpDot, lang.OpDotDot, lang.OpColon:
		return true
	}
	return false
}

func noSpaceAfter(tk *token.Token) bool {
	if tk.Kind != lang.KindOperator {
		return false
	}
	switch tk.Op {
	case lang.OpLParen, lang.OpLBrack, lang.OpCaretType, lang.OpCaretDeref, lang.OpAddressOf, lang.OpDot, lang.OpDotDot:
		return true
	}
	return false
}
