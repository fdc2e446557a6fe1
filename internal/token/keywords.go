package token

var keywords = map[string]Kind{
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"debugger":   KwDebugger,
	"default":    KwDefault,
	"delete":     KwDelete,
	"do":         KwDo,
	"else":       KwElse,
	"export":     KwExport,
	"extends":    KwExtends,
	"false":      KwFalse,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"new":        KwNew,
	"null":       KwNull,
	"return":     KwReturn,
	"super":      KwSuper,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"true":       KwTrue,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"var":        KwVar,
	"void":       KwVoid,
	"while":      KwWhile,
	"with":       KwWith,

	"abstract":   KwAbstract,
	"as":         KwAs,
	"async":      KwAsync,
	"await":      KwAwait,
	"declare":    KwDeclare,
	"enum":       KwEnum,
	"get":        KwGet,
	"implements": KwImplements,
	"interface":  KwInterface,
	"is":         KwIs,
	"keyof":      KwKeyof,
	"let":        KwLet,
	"module":     KwModule,
	"namespace":  KwNamespace,
	"of":         KwOf,
	"override":   KwOverride,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"public":     KwPublic,
	"readonly":   KwReadonly,
	"satisfies":  KwSatisfies,
	"set":        KwSet,
	"static":     KwStatic,
	"type":       KwType,
	"yield":      KwYield,
}

// LookupKeyword maps identifier text to a keyword kind, case-sensitively.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// IsReserved reports whether the kind can never be used as an identifier.
func IsReserved(k Kind) bool {
	switch k {
	case KwBreak, KwCase, KwCatch, KwClass, KwConst, KwContinue, KwDebugger,
		KwDefault, KwDelete, KwDo, KwElse, KwExport, KwExtends, KwFalse,
		KwFinally, KwFor, KwFunction, KwIf, KwImport, KwIn, KwInstanceof,
		KwNew, KwNull, KwReturn, KwSuper, KwSwitch, KwThis, KwThrow, KwTrue,
		KwTry, KwTypeof, KwVar, KwVoid, KwWhile, KwWith:
		return true
	default:
		return false
	}
}

// IsContextual reports whether the kind is a contextual word that may still
// act as a plain identifier.
func IsContextual(k Kind) bool {
	switch k {
	case KwAbstract, KwAs, KwAsync, KwAwait, KwDeclare, KwEnum, KwGet,
		KwImplements, KwInterface, KwIs, KwKeyof, KwLet, KwModule,
		KwNamespace, KwOf, KwOverride, KwPrivate, KwProtected, KwPublic,
		KwReadonly, KwSatisfies, KwSet, KwStatic, KwType, KwYield:
		return true
	default:
		return false
	}
}
