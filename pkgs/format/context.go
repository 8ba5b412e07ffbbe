package format

import (
	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

// ctxKind is the syntactic nesting the optimising line formatter keeps a
// stack of while it walks one logical line, per spec.md's Context list
// (Base, Brackets, CommaList, SemicolonList, Precedence, DirectiveList,
// RoutineHeader and friends). A round/square bracket context absorbs its
// directly-nested comma list; a routine header or property declaration's
// directive tail is a semicolon-separated DirectiveList at line depth 0.
type ctxKind uint8

const (
	ctxBase ctxKind = iota
	ctxBracketRound
	ctxBracketSquare
	ctxDirectiveList
	ctxPrecedence
)

// lineContext is one stack entry: the bracket/list this token position sits
// inside, and whether that span was already decided to explode one element
// per line because its flat width doesn't fit the configured target.
type lineContext struct {
	kind              ctxKind
	oneElementPerLine bool
}

// contextData is the per-line-relative-index lookup the requirement
// derivation function consults: which context (if any) most tightly
// encloses this token, and the bracket nesting depth (for continuation
// indent when a break is chosen).
type contextData struct {
	enclosing []lineContext
	depth     []int
}

type openSpan struct {
	kind     ctxKind
	start    int
	hasComma bool
}

// buildContextData walks one logical line's tokens and computes, for every
// position, which context encloses it. Bracket spans are found with a
// depth-tracking pass; a span's one_element_per_line flag is set once its
// own flat width exceeds target and it directly contains a comma, so a
// bracket whose contents don't fit explodes its direct elements one per
// line; a bracket holding only ';' separators is not exploded. A routine
// header or property declaration's own
// top-level semicolons (the directive tail separators, not the line
// terminator) form a DirectiveList context the same way. An over-long
// top-level binary expression with no bracket to absorb the break gets a
// Precedence context instead.
func buildContextData(toks []token.Token, idxs []int, kind lang.LineKind, target, baseIndent int) contextData {
	n := len(idxs)
	cd := contextData{enclosing: make([]lineContext, n), depth: make([]int, n)}

	var stack []openSpan
	depth := 0
	for i := 0; i < n; i++ {
		tk := &toks[idxs[i]]

		cd.depth[i] = depth
		if len(stack) > 0 {
			cd.enclosing[i] = lineContext{kind: stack[len(stack)-1].kind}
		} else {
			cd.enclosing[i] = lineContext{kind: ctxBase}
		}

		if len(stack) > 0 && tk.Kind == lang.KindOperator && tk.Op == lang.OpComma {
			stack[len(stack)-1].hasComma = true
		}

		if tk.Kind != lang.KindOperator {
			continue
		}
		switch tk.Op {
		case lang.OpLParen:
			stack = append(stack, openSpan{kind: ctxBracketRound, start: i})
		case lang.OpLBrack:
			stack = append(stack, openSpan{kind: ctxBracketSquare, start: i})
		case lang.OpRParen, lang.OpRBrack:
			if len(stack) == 0 {
				continue
			}
			o := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			depth--
			broken := flatWidth(toks, idxs, o.start, i)+baseIndent > target
			ctx := lineContext{kind: o.kind, oneElementPerLine: broken && o.hasComma}
			for j := o.start + 1; j <= i; j++ {
				if cd.depth[j] != depth+1 {
					continue // inside a nested span, which keeps its own context
				}
				cd.enclosing[j] = ctx
			}
			continue
		}
		if tk.Op == lang.OpLParen || tk.Op == lang.OpLBrack {
			depth++
		}
	}

	// A routine header / property declaration's top-level ';' separators
	// (the directive tail: "virtual; override; inline;") form a
	// DirectiveList context when the whole line doesn't fit flat.
	if kind == lang.LineRoutineHeader || kind == lang.LinePropertyDeclaration {
		if flatWidth(toks, idxs, 0, n-1)+baseIndent > target {
			for i := 0; i < n; i++ {
				if cd.depth[i] == 0 {
					cd.enclosing[i] = lineContext{kind: ctxDirectiveList, oneElementPerLine: true}
				}
			}
		}
	}

	// An import/export clause's top-level commas (unit names, no enclosing
	// bracket) get the same one-element-per-line treatment once the whole
	// clause doesn't fit flat.
	if kind == lang.LineImportClause || kind == lang.LineExportClause {
		if flatWidth(toks, idxs, 0, n-1)+baseIndent > target {
			for i := 0; i < n; i++ {
				if cd.depth[i] == 0 && cd.enclosing[i].kind == ctxBase {
					cd.enclosing[i] = lineContext{kind: ctxDirectiveList, oneElementPerLine: true}
				}
			}
		}
	}

	// A top-level assignment/statement whose expression is itself too long
	// with nothing bracketed to absorb the break gets a Precedence context
	// over its binary-operator tokens, so the operator requirement below
	// knows one-operand-per-line is warranted.
	if kind == lang.LineAssignment || kind == lang.LineStatement {
		if flatWidth(toks, idxs, 0, n-1)+baseIndent > target {
			for i := 0; i < n; i++ {
				if cd.depth[i] == 0 && cd.enclosing[i].kind == ctxBase {
					tk := &toks[idxs[i]]
					if isOperatorToken(tk) {
						cd.enclosing[i] = lineContext{kind: ctxPrecedence, oneElementPerLine: true}
					}
				}
			}
		}
	}

	return cd
}

func flatWidth(toks []token.Token, idxs []int, from, to int) int {
	w := 0
	for i := from; i <= to && i < len(idxs); i++ {
		if i > from {
			w++ // separating space
		}
		w += len([]rune(toks[idxs[i]].Text()))
	}
	return w
}

func isOperatorToken(tk *token.Token) bool {
	if tk.Kind == lang.KindOperator {
		return isBinaryOperator(tk.Op)
	}
	return tk.Kind == lang.KindKeyword && isBinaryKeywordOperator(tk.Keyword)
}

func isBinaryOperator(op lang.OperatorKind) bool {
	switch op {
	case lang.OpPlus, lang.OpMinus, lang.OpStar, lang.OpSlash,
		lang.OpEqual, lang.OpNotEqual, lang.OpLessThan, lang.OpLessEqual,
		lang.OpGreaterThan, lang.OpGreaterEqual:
		return true
	}
	return false
}

func isBinaryKeywordOperator(kw lang.KeywordKind) bool {
	switch kw {
	case lang.KwAnd, lang.KwOr, lang.KwXor, lang.KwDiv, lang.KwMod,
		lang.KwShl, lang.KwShr, lang.KwIn, lang.KwIs, lang.KwAs:
		return true
	}
	return false
}
