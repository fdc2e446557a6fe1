package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegex        Code = 1006

	// Syntactic.
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectSemicolon    Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectType         Code = 2006
	SynBadAssignTarget    Code = 2007
	SynAwaitOutsideAsync  Code = 2008
	SynYieldOutsideGen    Code = 2009
	SynBadEnumMember      Code = 2010
	SynBadParameter       Code = 2011
	SynDecoratorsDisabled Code = 2012
	SynBadModifier        Code = 2013

	// Strip-only mode rejections (construct needs lowering or is banned).
	StripInfo          Code = 3000
	StripEnum          Code = 3001
	StripNamespace     Code = 3002
	StripModuleKeyword Code = 3003
	StripParamProperty Code = 3004
	StripImportEquals  Code = 3005
	StripExportAssign  Code = 3006

	// Full-transform mode rejections.
	LowerInfo          Code = 3100
	LowerModuleKeyword Code = 3101
	LowerImportEquals  Code = 3102
	LowerExportAssign  Code = 3103
	LowerEnumInit      Code = 3104
)

func (c Code) String() string {
	switch {
	case c >= 3100:
		return fmt.Sprintf("XFM%04d", uint16(c))
	case c >= 3000:
		return fmt.Sprintf("STR%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("UNK%04d", uint16(c))
	}
}

// IsParse reports whether the code came from the lexer or parser, i.e. the
// input could not be understood as TypeScript at all.
func (c Code) IsParse() bool {
	return c >= 1000 && c < 3000
}
