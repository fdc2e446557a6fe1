package token

// kindNames is indexed by Kind and must stay in const order.
var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	PrivateIdent: "PrivateIdent",

	KwBreak:      "KwBreak",
	KwCase:       "KwCase",
	KwCatch:      "KwCatch",
	KwClass:      "KwClass",
	KwConst:      "KwConst",
	KwContinue:   "KwContinue",
	KwDebugger:   "KwDebugger",
	KwDefault:    "KwDefault",
	KwDelete:     "KwDelete",
	KwDo:         "KwDo",
	KwElse:       "KwElse",
	KwExport:     "KwExport",
	KwExtends:    "KwExtends",
	KwFalse:      "KwFalse",
	KwFinally:    "KwFinally",
	KwFor:        "KwFor",
	KwFunction:   "KwFunction",
	KwIf:         "KwIf",
	KwImport:     "KwImport",
	KwIn:         "KwIn",
	KwInstanceof: "KwInstanceof",
	KwNew:        "KwNew",
	KwNull:       "KwNull",
	KwReturn:     "KwReturn",
	KwSuper:      "KwSuper",
	KwSwitch:     "KwSwitch",
	KwThis:       "KwThis",
	KwThrow:      "KwThrow",
	KwTrue:       "KwTrue",
	KwTry:        "KwTry",
	KwTypeof:     "KwTypeof",
	KwVar:        "KwVar",
	KwVoid:       "KwVoid",
	KwWhile:      "KwWhile",
	KwWith:       "KwWith",

	KwAbstract:   "KwAbstract",
	KwAs:         "KwAs",
	KwAsync:      "KwAsync",
	KwAwait:      "KwAwait",
	KwDeclare:    "KwDeclare",
	KwEnum:       "KwEnum",
	KwGet:        "KwGet",
	KwImplements: "KwImplements",
	KwInterface:  "KwInterface",
	KwIs:         "KwIs",
	KwKeyof:      "KwKeyof",
	KwLet:        "KwLet",
	KwModule:     "KwModule",
	KwNamespace:  "KwNamespace",
	KwOf:         "KwOf",
	KwOverride:   "KwOverride",
	KwPrivate:    "KwPrivate",
	KwProtected:  "KwProtected",
	KwPublic:     "KwPublic",
	KwReadonly:   "KwReadonly",
	KwSatisfies:  "KwSatisfies",
	KwSet:        "KwSet",
	KwStatic:     "KwStatic",
	KwType:       "KwType",
	KwYield:      "KwYield",

	NumberLit:      "NumberLit",
	StringLit:      "StringLit",
	RegexLit:       "RegexLit",
	TemplateFull:   "TemplateFull",
	TemplateHead:   "TemplateHead",
	TemplateMiddle: "TemplateMiddle",
	TemplateTail:   "TemplateTail",

	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Dot:         "Dot",
	DotDotDot:   "DotDotDot",
	Colon:       "Colon",
	Question:    "Question",
	QuestionDot: "QuestionDot",
	Arrow:       "Arrow",
	At:          "At",

	Assign:         "Assign",
	PlusAssign:     "PlusAssign",
	MinusAssign:    "MinusAssign",
	StarAssign:     "StarAssign",
	SlashAssign:    "SlashAssign",
	PercentAssign:  "PercentAssign",
	StarStarAssign: "StarStarAssign",
	ShlAssign:      "ShlAssign",
	ShrAssign:      "ShrAssign",
	UShrAssign:     "UShrAssign",
	AmpAssign:      "AmpAssign",
	PipeAssign:     "PipeAssign",
	CaretAssign:    "CaretAssign",
	AndAndAssign:   "AndAndAssign",
	OrOrAssign:     "OrOrAssign",
	QQAssign:       "QQAssign",

	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	StarStar:         "StarStar",
	Slash:            "Slash",
	Percent:          "Percent",
	PlusPlus:         "PlusPlus",
	MinusMinus:       "MinusMinus",
	Shl:              "Shl",
	Shr:              "Shr",
	UShr:             "UShr",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Bang:             "Bang",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	QuestionQuestion: "QuestionQuestion",
	Lt:               "Lt",
	Gt:               "Gt",
	LtEq:             "LtEq",
	GtEq:             "GtEq",
	EqEq:             "EqEq",
	EqEqEq:           "EqEqEq",
	BangEq:           "BangEq",
	BangEqEq:         "BangEqEq",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

func (tk TriviaKind) String() string {
	switch tk {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia(?)"
}
