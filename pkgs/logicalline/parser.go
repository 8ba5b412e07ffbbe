package logicalline

import (
	"strings"

	"github.com/pasfmt/pasfmt/pkgs/lang"
	"github.com/pasfmt/pasfmt/pkgs/token"
)

type frameKind uint8

const (
	frameBeginEnd frameKind = iota
	frameTry
	frameCase
	frameRepeat
	frameTypeBody
	frameAsm
)

type frame struct {
	kind    frameKind
	openAt  int
	variant bool // frameCase only: this case arm set is a record's variant part
}

// builder groups one pass's token indices into Lines. It tracks bracket
// depth (to avoid splitting inside parameter lists and expressions) and a
// stack of block frames (begin/end, try, case, repeat/until, type bodies,
// asm) to know what a trailing "end"/"until" closes and what nesting
// level the lines inside it belong at.
type builder struct {
	toks []token.Token
	idxs []int
	pos  int

	level        int
	stack        []frame
	bracketDepth int
	section      lang.LineKind // current declaration section, if any
	pendingCase  bool

	cur   []int
	lines []Line
}

func parseOnePass(toks []token.Token, idxs []int) []Line {
	b := &builder{toks: toks, idxs: idxs}
	b.run()
	return b.lines
}

func (b *builder) run() {
	for b.pos < len(b.idxs) {
		b.step()
	}
	b.flush(b.classifyDefault())
}

func (b *builder) parentToken() int {
	if len(b.stack) == 0 {
		return -1
	}
	return b.stack[len(b.stack)-1].openAt
}

func (b *builder) flush(kind lang.LineKind) {
	if len(b.cur) == 0 {
		return
	}
	b.lines = append(b.lines, Line{Kind: kind, Level: b.level, ParentToken: b.parentToken(), Tokens: b.cur})
	b.cur = nil
}

func (b *builder) append(idx int) {
	tk := &b.toks[idx]
	switch {
	case tk.Kind == lang.KindOperator && tk.Op == lang.OpLParen:
		b.bracketDepth++
	case tk.Kind == lang.KindOperator && tk.Op == lang.OpLBrack:
		b.bracketDepth++
	case tk.Kind == lang.KindOperator && tk.Op == lang.OpRParen && b.bracketDepth > 0:
		b.bracketDepth--
	case tk.Kind == lang.KindOperator && tk.Op == lang.OpRBrack && b.bracketDepth > 0:
		b.bracketDepth--
	}
	b.cur = append(b.cur, idx)
}

func (b *builder) hasNewlineBefore(idx int) bool {
	tk := &b.toks[idx]
	lead := tk.Raw[:len(tk.Raw)-len(tk.Content)]
	return strings.ContainsRune(lead, '\n')
}

func (b *builder) topFrame() (frame, bool) {
	if len(b.stack) == 0 {
		return frame{}, false
	}
	return b.stack[len(b.stack)-1], true
}

// classifyDefault picks a Line kind for the line currently being closed,
// based on its first token and the enclosing frame/section context.
func (b *builder) classifyDefault() lang.LineKind {
	if len(b.cur) == 0 {
		return lang.LineUnknown
	}
	first := &b.toks[b.cur[0]]
	if top, ok := b.topFrame(); ok && top.kind == frameAsm {
		return lang.LineAsmInstruction
	}
	if first.Kind == lang.KindOperator && first.Op == lang.OpLBrack {
		return bracketGroupKind(b.toks, b.cur)
	}
	switch first.Keyword {
	case lang.KwProgram:
		return lang.LineProgramHeader
	case lang.KwUnit, lang.KwLibrary, lang.KwPackage:
		return lang.LineUnitHeader
	case lang.KwUses, lang.KwContains, lang.KwRequires:
		return lang.LineImportClause
	case lang.KwExports:
		return lang.LineExportClause
	case lang.KwConst, lang.KwVar, lang.KwType, lang.KwLabel, lang.KwThreadVar, lang.KwResourceString:
		return lang.LineDeclarationHead
	case lang.KwProcedure, lang.KwFunction, lang.KwConstructor, lang.KwDestructor:
		return lang.LineRoutineHeader
	case lang.KwProperty:
		return lang.LinePropertyDeclaration
	case lang.KwFor:
		return lang.LineForLoop
	case lang.KwIf, lang.KwWhile, lang.KwWith, lang.KwRepeat,
		lang.KwElse, lang.KwExcept, lang.KwFinally, lang.KwCase, lang.KwGoto, lang.KwRaise:
		return lang.LineControlFlow
	}
	if top, ok := b.topFrame(); ok {
		switch top.kind {
		case frameCase:
			if top.variant {
				return lang.LineVariantRecordCaseArm
			}
			return lang.LineCaseArm
		case frameBeginEnd, frameTry, frameRepeat:
			if hasTopLevelAssign(b.toks, b.cur) {
				return lang.LineAssignment
			}
			return lang.LineStatement
		}
	}
	if b.section != lang.LineUnknown {
		return lang.LineInlineDeclaration
	}
	return lang.LineUnknown
}

func (b *builder) step() {
	idx := b.idxs[b.pos]
	tk := &b.toks[idx]

	if top, ok := b.topFrame(); ok && top.kind == frameAsm && len(b.cur) > 0 && b.hasNewlineBefore(idx) {
		b.flush(lang.LineAsmInstruction)
	}

	switch {
	case tk.Keyword == lang.KwEnd && len(b.stack) > 0:
		b.flush(b.classifyDefault())
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.level--
		endKind := lang.LineCompoundEnd
		if top.kind == frameTypeBody {
			endKind = lang.LineTypeEnd
		}
		b.pos++
		b.append(idx)
		b.consumeTrailerThenFlush(endKind)
		return

	case tk.Keyword == lang.KwUntil && topIs(b, frameRepeat):
		b.flush(b.classifyDefault())
		b.stack = b.stack[:len(b.stack)-1]
		b.level--
		b.pos++
		b.append(idx)
		return

	case tk.Keyword == lang.KwBegin:
		b.flush(b.classifyDefault())
		b.pos++
		b.append(idx)
		b.flush(lang.LineCompoundBegin)
		b.stack = append(b.stack, frame{kind: frameBeginEnd, openAt: idx})
		b.level++
		b.section = lang.LineUnknown
		return

	case tk.Keyword == lang.KwAsm:
		b.flush(b.classifyDefault())
		b.pos++
		b.append(idx)
		b.flush(lang.LineControlFlow)
		b.stack = append(b.stack, frame{kind: frameAsm, openAt: idx})
		b.level++
		b.section = lang.LineUnknown
		return

	case tk.Keyword == lang.KwTry:
		b.flush(b.classifyDefault())
		b.pos++
		b.append(idx)
		b.flush(lang.LineControlFlow)
		b.stack = append(b.stack, frame{kind: frameTry, openAt: idx})
		b.level++
		return

	case tk.Keyword == lang.KwRepeat:
		b.flush(b.classifyDefault())
		b.pos++
		b.append(idx)
		b.flush(lang.LineControlFlow)
		b.stack = append(b.stack, frame{kind: frameRepeat, openAt: idx})
		b.level++
		return

	case tk.Keyword == lang.KwCase && b.bracketDepth == 0 && len(b.cur) == 0:
		b.pendingCase = true
		b.append(idx)
		b.pos++
		return

	case b.pendingCase && tk.Keyword == lang.KwOf && b.bracketDepth == 0:
		b.append(idx)
		b.pos++
		b.pendingCase = false
		b.flush(lang.LineCaseHeader)
		enclosing, ok := b.topFrame()
		variant := ok && enclosing.kind == frameTypeBody
		b.stack = append(b.stack, frame{kind: frameCase, openAt: idx, variant: variant})
		b.level++
		return

	case isTypeBodyOpener(tk.Keyword) && len(b.cur) > 0:
		b.append(idx)
		b.pos++
		if b.consumeOptionalAncestorClause() {
			// forward declaration or "class of" reference: not a body.
			return
		}
		b.flush(lang.LineTypeHead)
		b.stack = append(b.stack, frame{kind: frameTypeBody, openAt: idx})
		b.level++
		b.section = lang.LineUnknown
		return

	case isStandaloneSection(tk.Keyword) && len(b.cur) == 0:
		b.append(idx)
		b.pos++
		b.flush(lang.LineSectionHeader)
		b.section = lang.LineUnknown
		return

	case isSectionOpener(tk.Keyword) && len(b.cur) == 0:
		b.append(idx)
		b.pos++
		b.section = sectionKindFor(tk.Keyword)
		b.flush(lang.LineDeclarationHead)
		return

	case (tk.Keyword == lang.KwProcedure || tk.Keyword == lang.KwFunction ||
		tk.Keyword == lang.KwConstructor || tk.Keyword == lang.KwDestructor) && len(b.cur) == 0:
		b.append(idx)
		b.pos++
		b.consumeRoutineHeader()
		return

	case tk.Keyword == lang.KwProperty && len(b.cur) == 0:
		b.append(idx)
		b.pos++
		b.consumePropertyDeclaration()
		return

	case tk.Keyword == lang.KwElse && len(b.cur) == 0:
		b.append(idx)
		b.pos++
		if b.peekKeyword() == lang.KwIf {
			return // "else if" continues accumulating to its own "then".
		}
		b.flush(lang.LineControlFlow)
		return

	case (tk.Keyword == lang.KwThen || tk.Keyword == lang.KwDo) && b.bracketDepth == 0:
		b.append(idx)
		b.pos++
		b.flush(lang.LineControlFlow)
		return

	case tk.Kind == lang.KindOperator && tk.Op == lang.OpSemicolon && b.bracketDepth == 0:
		b.append(idx)
		b.pos++
		b.flush(b.classifyDefault())
		return

	case tk.Kind == lang.KindOperator && tk.Op == lang.OpRBrack && b.bracketDepth == 1 &&
		len(b.cur) > 0 && b.toks[b.cur[0]].Op == lang.OpLBrack:
		b.append(idx)
		b.pos++
		b.flush(bracketGroupKind(b.toks, b.cur))
		return

	case tk.Kind == lang.KindConditionalDirective:
		b.flush(b.classifyDefault())
		b.pos++
		b.append(idx)
		b.flush(lang.LineConditionalDirective)
		return

	case tk.Kind == lang.KindCompilerDirective:
		b.flush(b.classifyDefault())
		b.pos++
		b.append(idx)
		b.flush(lang.LineCompilerDirective)
		return

	default:
		b.append(idx)
		b.pos++
		return
	}
}

func topIs(b *builder, k frameKind) bool {
	top, ok := b.topFrame()
	return ok && top.kind == k
}

// consumeTrailerThenFlush absorbs the tokens immediately following a
// closing "end" that belong on the same line ("." or ";"), then flushes.
func (b *builder) consumeTrailerThenFlush(kind lang.LineKind) {
	for b.pos < len(b.idxs) {
		idx := b.idxs[b.pos]
		tk := &b.toks[idx]
		if tk.Kind == lang.KindOperator && (tk.Op == lang.OpDot || tk.Op == lang.OpSemicolon) {
			b.append(idx)
			b.pos++
			if tk.Op == lang.OpSemicolon {
				break
			}
			continue
		}
		break
	}
	b.flush(kind)
}

func (b *builder) peekKeyword() lang.KeywordKind {
	if b.pos >= len(b.idxs) {
		return lang.KwUnknown
	}
	return b.toks[b.idxs[b.pos]].Keyword
}

// consumeOptionalAncestorClause consumes an optional parenthesised
// ancestor/interface list and "helper for X" clause following a type-body
// opener keyword, then reports whether what follows shows this is NOT
// actually a body (a forward declaration ending in ';', or a "class of"
// reference type).
func (b *builder) consumeOptionalAncestorClause() (notABody bool) {
	if b.pos < len(b.idxs) && b.toks[b.idxs[b.pos]].Op == lang.OpLParen {
		depth := 0
		for b.pos < len(b.idxs) {
			idx := b.idxs[b.pos]
			tk := &b.toks[idx]
			b.append(idx)
			b.pos++
			if tk.Op == lang.OpLParen {
				depth++
			} else if tk.Op == lang.OpRParen {
				depth--
				if depth == 0 {
					break
				}
			}
		}
	}
	if b.peekKeyword() == lang.KwHelper {
		for b.pos < len(b.idxs) {
			idx := b.idxs[b.pos]
			tk := &b.toks[idx]
			if tk.Kind == lang.KindOperator && tk.Op == lang.OpSemicolon {
				break
			}
			b.append(idx)
			b.pos++
			if tk.Keyword == lang.KwFor {
				if b.pos < len(b.idxs) {
					b.append(b.idxs[b.pos])
					b.pos++
				}
				break
			}
		}
	}
	if b.pos >= len(b.idxs) {
		return true
	}
	next := &b.toks[b.idxs[b.pos]]
	return (next.Kind == lang.KindOperator && next.Op == lang.OpSemicolon) || next.Keyword == lang.KwOf
}

// consumeRoutineHeader accumulates a routine declaration's parameter list,
// return type, and every directive clause ("; virtual; override;"
// "; external 'lib' name 'Foo';") into one RoutineHeader line.
func (b *builder) consumeRoutineHeader() {
	b.consumeUpToFirstSemicolon()
	b.extendDirectiveTail()
	b.flush(lang.LineRoutineHeader)
}

func (b *builder) consumePropertyDeclaration() {
	b.consumeUpToFirstSemicolon()
	b.extendDirectiveTail()
	b.flush(lang.LinePropertyDeclaration)
}

func (b *builder) consumeUpToFirstSemicolon() {
	for b.pos < len(b.idxs) {
		idx := b.idxs[b.pos]
		tk := &b.toks[idx]
		b.append(idx)
		b.pos++
		if tk.Kind == lang.KindOperator && tk.Op == lang.OpSemicolon && b.bracketDepth == 0 {
			return
		}
		if tk.Keyword == lang.KwBegin {
			return
		}
	}
}

// extendDirectiveTail keeps absorbing ";"-separated directive clauses
// (each beginning with an IdentifierOrKeyword word such as virtual,
// override, stdcall, read, write, default) as long as the next clause
// clearly starts with one; a plain identifier or a new declaration's
// keyword ends the header.
func (b *builder) extendDirectiveTail() {
	for {
		if b.pos >= len(b.idxs) {
			return
		}
		next := &b.toks[b.idxs[b.pos]]
		if next.Kind != lang.KindIdentifierOrKeyword {
			return
		}
		for b.pos < len(b.idxs) {
			idx := b.idxs[b.pos]
			tk := &b.toks[idx]
			b.append(idx)
			b.pos++
			if tk.Kind == lang.KindOperator && tk.Op == lang.OpSemicolon && b.bracketDepth == 0 {
				break
			}
		}
	}
}

// bracketGroupKind classifies a flushed "[...]" group: a GUID literal when
// its only interior token is a quoted text literal shaped like
// "'{...}'" (the form an interface type's GUID is written in), an
// attribute group otherwise.
func bracketGroupKind(toks []token.Token, idxs []int) lang.LineKind {
	if len(idxs) == 3 && toks[idxs[1]].Kind == lang.KindTextLiteral && looksLikeGuid(toks[idxs[1]].Content) {
		return lang.LineGuid
	}
	return lang.LineAttributeGroup
}

func looksLikeGuid(content string) bool {
	s := content
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}'
}

// hasTopLevelAssign reports whether idxs contains an assignment operator
// (":=") not nested inside its own brackets, i.e. this statement's top
// form is itself an assignment rather than a procedure call or other
// statement shape.
func hasTopLevelAssign(toks []token.Token, idxs []int) bool {
	depth := 0
	for _, idx := range idxs {
		tk := &toks[idx]
		switch {
		case tk.Kind == lang.KindOperator && (tk.Op == lang.OpLParen || tk.Op == lang.OpLBrack):
			depth++
		case tk.Kind == lang.KindOperator && (tk.Op == lang.OpRParen || tk.Op == lang.OpRBrack) && depth > 0:
			depth--
		case tk.Kind == lang.KindOperator && tk.Op == lang.OpAssign && depth == 0:
			return true
		}
	}
	return false
}

func isTypeBodyOpener(kw lang.KeywordKind) bool {
	switch kw {
	case lang.KwClass, lang.KwRecord, lang.KwInterface, lang.KwObject, lang.KwDispInterface:
		return true
	default:
		return false
	}
}

func isStandaloneSection(kw lang.KeywordKind) bool {
	switch kw {
	case lang.KwInterface, lang.KwImplementation, lang.KwInitialization, lang.KwFinalization:
		return true
	default:
		return false
	}
}

func isSectionOpener(kw lang.KeywordKind) bool {
	switch kw {
	case lang.KwConst, lang.KwVar, lang.KwType, lang.KwLabel, lang.KwThreadVar, lang.KwResourceString:
		return true
	default:
		return false
	}
}

func sectionKindFor(kw lang.KeywordKind) lang.LineKind {
	return lang.LineDeclarationHead
}
