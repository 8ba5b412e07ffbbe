package lang

// KeywordKind enumerates every reserved word recognised by the lexer. Pure
// keywords (e.g. "begin", "const") are always classified as KindKeyword;
// impure keywords (e.g. "absolute", "read") are lexed as
// KindIdentifierOrKeyword and only promoted to keyword status by the
// logical line parser when they occur in a syntactic position that demands
// it (spec.md §4).
type KeywordKind uint16

const (
	KwUnknown KeywordKind = iota
	KwAbsolute
	KwAbstract
	KwAdd
	KwAlign
	KwAnd
	KwArray
	KwAs
	KwAsm
	KwAssembler
	KwAt
	KwAutomated
	KwBegin
	KwCase
	KwCdecl
	KwClass
	KwConst
	KwConstructor
	KwContains
	KwDefault
	KwDelayed
	KwDeprecated
	KwDestructor
	KwDispId
	KwDispInterface
	KwDiv
	KwDo
	KwDownto
	KwDynamic
	KwElse
	KwEnd
	KwExcept
	KwExperimental
	KwExport
	KwExports
	KwExternal
	KwFar
	KwFile
	KwFinal
	KwFinalization
	KwFinally
	KwFor
	KwForward
	KwFunction
	KwGoto
	KwHelper
	KwIf
	KwImplementation
	KwImplements
	KwIn
	KwIndex
	KwInherited
	KwInitialization
	KwInline
	KwInterface
	KwIs
	KwLabel
	KwLibrary
	KwLocal
	KwMessage
	KwMod
	KwName
	KwNear
	KwNil
	KwNoDefault
	KwNot
	KwObject
	KwOf
	KwOn
	KwOperator
	KwOr
	KwOut
	KwOverload
	KwOverride
	KwPackage
	KwPacked
	KwPascal
	KwPlatform
	KwPrivate
	KwProcedure
	KwProgram
	KwProperty
	KwProtected
	KwPublic
	KwPublished
	KwRaise
	KwRead
	KwReadOnly
	KwRecord
	KwReference
	KwRegister
	KwReintroduce
	KwRemove
	KwRepeat
	KwRequires
	KwResident
	KwResourceString
	KwSafeCall
	KwSealed
	KwSet
	KwShl
	KwShr
	KwStatic
	KwStdCall
	KwStored
	KwStrict
	KwThen
	KwThreadVar
	KwTo
	KwTry
	KwType
	KwUnit
	KwUnsafe
	KwUntil
	KwUses
	KwVar
	KwVarArgs
	KwVariant
	KwVirtual
	KwWhile
	KwWith
	KwWrite
	KwWriteOnly
	KwXor
)

type keywordEntry struct {
	kind KeywordKind
	pure bool
}

// keywords is a direct transcription of the 123-entry reserved word table:
// pure keywords are always KindKeyword, the rest are context-sensitive
// (KindIdentifierOrKeyword) and only become keywords where the logical line
// parser's grammar demands it.
var keywords = map[string]keywordEntry{
	"absolute":       {KwAbsolute, false},
	"abstract":       {KwAbstract, false},
	"add":            {KwAdd, false},
	"align":          {KwAlign, false},
	"and":            {KwAnd, true},
	"array":          {KwArray, true},
	"as":             {KwAs, true},
	"asm":            {KwAsm, true},
	"assembler":      {KwAssembler, false},
	"at":             {KwAt, false},
	"automated":      {KwAutomated, false},
	"begin":          {KwBegin, true},
	"case":           {KwCase, true},
	"cdecl":          {KwCdecl, false},
	"class":          {KwClass, true},
	"const":          {KwConst, true},
	"constructor":    {KwConstructor, true},
	"contains":       {KwContains, false},
	"default":        {KwDefault, false},
	"delayed":        {KwDelayed, false},
	"deprecated":     {KwDeprecated, false},
	"destructor":     {KwDestructor, true},
	"dispid":         {KwDispId, false},
	"dispinterface":  {KwDispInterface, true},
	"div":            {KwDiv, true},
	"do":             {KwDo, true},
	"downto":         {KwDownto, true},
	"dynamic":        {KwDynamic, false},
	"else":           {KwElse, true},
	"end":            {KwEnd, true},
	"except":         {KwExcept, true},
	"experimental":   {KwExperimental, false},
	"export":         {KwExport, false},
	"exports":        {KwExports, true},
	"external":       {KwExternal, false},
	"far":            {KwFar, false},
	"file":           {KwFile, true},
	"final":          {KwFinal, false},
	"finalization":   {KwFinalization, true},
	"finally":        {KwFinally, true},
	"for":            {KwFor, true},
	"forward":        {KwForward, false},
	"function":       {KwFunction, true},
	"goto":           {KwGoto, true},
	"helper":         {KwHelper, false},
	"if":             {KwIf, true},
	"implementation": {KwImplementation, true},
	"implements":     {KwImplements, false},
	"in":             {KwIn, true},
	"index":          {KwIndex, false},
	"inherited":      {KwInherited, true},
	"initialization": {KwInitialization, true},
	"inline":         {KwInline, true},
	"interface":      {KwInterface, true},
	"is":             {KwIs, true},
	"label":          {KwLabel, true},
	"library":        {KwLibrary, true},
	"local":          {KwLocal, false},
	"message":        {KwMessage, false},
	"mod":            {KwMod, true},
	"name":           {KwName, false},
	"near":           {KwNear, false},
	"nil":            {KwNil, true},
	"nodefault":      {KwNoDefault, false},
	"not":            {KwNot, true},
	"object":         {KwObject, true},
	"of":             {KwOf, true},
	"on":             {KwOn, false},
	"operator":       {KwOperator, false},
	"or":             {KwOr, true},
	"out":            {KwOut, false},
	"overload":       {KwOverload, false},
	"override":       {KwOverride, false},
	"package":        {KwPackage, false},
	"packed":         {KwPacked, true},
	"pascal":         {KwPascal, false},
	"platform":       {KwPlatform, false},
	"private":        {KwPrivate, false},
	"procedure":      {KwProcedure, true},
	"program":        {KwProgram, true},
	"property":       {KwProperty, true},
	"protected":      {KwProtected, false},
	"public":         {KwPublic, false},
	"published":      {KwPublished, false},
	"raise":          {KwRaise, true},
	"read":           {KwRead, false},
	"readonly":       {KwReadOnly, false},
	"record":         {KwRecord, true},
	"reference":      {KwReference, false},
	"register":       {KwRegister, false},
	"reintroduce":    {KwReintroduce, false},
	"remove":         {KwRemove, false},
	"repeat":         {KwRepeat, true},
	"requires":       {KwRequires, false},
	"resident":       {KwResident, false},
	"resourcestring": {KwResourceString, true},
	"safecall":       {KwSafeCall, false},
	"sealed":         {KwSealed, false},
	"set":            {KwSet, true},
	"shl":            {KwShl, true},
	"shr":            {KwShr, true},
	"static":         {KwStatic, false},
	"stdcall":        {KwStdCall, false},
	"stored":         {KwStored, false},
	"strict":         {KwStrict, false},
	"then":           {KwThen, true},
	"threadvar":      {KwThreadVar, true},
	"to":             {KwTo, true},
	"try":            {KwTry, true},
	"type":           {KwType, true},
	"unit":           {KwUnit, true},
	"unsafe":         {KwUnsafe, false},
	"until":          {KwUntil, true},
	"uses":           {KwUses, true},
	"var":            {KwVar, true},
	"varargs":        {KwVarArgs, false},
	"variant":        {KwVariant, false},
	"virtual":        {KwVirtual, false},
	"while":          {KwWhile, true},
	"with":           {KwWith, true},
	"write":          {KwWrite, false},
	"writeonly":      {KwWriteOnly, false},
	"xor":            {KwXor, true},
}

// LookupKeyword classifies word (already known to be all-ASCII
// letters/digits/underscore and not starting with a digit) as a keyword.
// ok is false for plain identifiers. kind is the resulting token Kind:
// KindKeyword for pure keywords, KindIdentifierOrKeyword otherwise.
func LookupKeyword(word string) (kw KeywordKind, kind Kind, ok bool) {
	entry, found := keywords[asciiLower(word)]
	if !found {
		return KwUnknown, KindIdentifier, false
	}
	if entry.pure {
		return entry.kind, KindKeyword, true
	}
	return entry.kind, KindIdentifierOrKeyword, true
}
