package lang

// LineKind classifies a logical line produced by the logical line parser.
// Unknown is always a legal fallback for a construct the parser did not
// confidently recognise; spec.md treats that as correct behaviour, not an
// error, so the formatter can still emit well-formed text for code it only
// partially understands.
type LineKind uint8

const (
	LineUnknown LineKind = iota
	LineProgramHeader
	LineUnitHeader
	LineImportClause // uses/contains/requires, including "unit in 'path'" forms
	LineExportClause // exports clause, including "index N name foo"
	LineSectionHeader   // interface/implementation/initialization/finalization
	LineDeclarationHead // const/var/type/label/threadvar/resourcestring section opener
	LineInlineDeclaration
	LineRoutineHeader
	LinePropertyDeclaration
	LineTypeHead // record/class/interface/object header line
	LineTypeEnd  // matching 'end' for a type body
	LineCaseHeader          // "case <selector> of"
	LineCaseArm             // an arm of a statement-level case
	LineVariantRecordCaseArm // an arm of a record's variant part
	LineGuid                // a bracketed GUID literal after an interface header
	LineConditionalDirective
	LineCompilerDirective
	LineForLoop
	LineAssignment
	LineControlFlow
	LineCompoundBegin
	LineCompoundEnd
	LineStatement
	LineAsmInstruction
	LineAttributeGroup
	LineEof
	LineVoided
)

func (k LineKind) String() string {
	switch k {
	case LineProgramHeader:
		return "ProgramHeader"
	case LineUnitHeader:
		return "UnitHeader"
	case LineImportClause:
		return "ImportClause"
	case LineExportClause:
		return "ExportClause"
	case LineSectionHeader:
		return "SectionHeader"
	case LineDeclarationHead:
		return "DeclarationHead"
	case LineInlineDeclaration:
		return "InlineDeclaration"
	case LineRoutineHeader:
		return "RoutineHeader"
	case LinePropertyDeclaration:
		return "PropertyDeclaration"
	case LineTypeHead:
		return "TypeHead"
	case LineTypeEnd:
		return "TypeEnd"
	case LineCaseHeader:
		return "CaseHeader"
	case LineCaseArm:
		return "CaseArm"
	case LineVariantRecordCaseArm:
		return "VariantRecordCaseArm"
	case LineGuid:
		return "Guid"
	case LineConditionalDirective:
		return "ConditionalDirective"
	case LineCompilerDirective:
		return "CompilerDirective"
	case LineForLoop:
		return "ForLoop"
	case LineAssignment:
		return "Assignment"
	case LineControlFlow:
		return "ControlFlow"
	case LineCompoundBegin:
		return "CompoundBegin"
	case LineCompoundEnd:
		return "CompoundEnd"
	case LineStatement:
		return "Statement"
	case LineAsmInstruction:
		return "AsmInstruction"
	case LineAttributeGroup:
		return "AttributeGroup"
	case LineEof:
		return "Eof"
	case LineVoided:
		return "Voided"
	default:
		return "Unknown"
	}
}
