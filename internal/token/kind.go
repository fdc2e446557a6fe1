package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// PrivateIdent represents a class private name such as #field.
	PrivateIdent

	// Reserved words. These can never be used as identifiers.

	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDebugger represents the 'debugger' keyword.
	KwDebugger // debugger
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with

	// Contextual words. The lexer tags them so the parser does not re-compare
	// text; each one still parses as a plain identifier outside its context.

	// KwAbstract represents the contextual 'abstract' modifier.
	KwAbstract // abstract
	// KwAs represents the contextual 'as' operator.
	KwAs // as
	// KwAsync represents the contextual 'async' modifier.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwDeclare represents the contextual 'declare' modifier.
	KwDeclare // declare
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwGet represents the contextual 'get' accessor keyword.
	KwGet // get
	// KwImplements represents the contextual 'implements' clause keyword.
	KwImplements // implements
	// KwInterface represents the contextual 'interface' keyword.
	KwInterface // interface
	// KwIs represents the contextual 'is' type-predicate keyword.
	KwIs // is
	// KwKeyof represents the contextual 'keyof' type operator.
	KwKeyof // keyof
	// KwLet represents the contextual 'let' keyword.
	KwLet // let
	// KwModule represents the legacy 'module' keyword.
	KwModule // module
	// KwNamespace represents the contextual 'namespace' keyword.
	KwNamespace // namespace
	// KwOf represents the contextual 'of' keyword.
	KwOf // of
	// KwOverride represents the contextual 'override' modifier.
	KwOverride // override
	// KwPrivate represents the contextual 'private' modifier.
	KwPrivate // private
	// KwProtected represents the contextual 'protected' modifier.
	KwProtected // protected
	// KwPublic represents the contextual 'public' modifier.
	KwPublic // public
	// KwReadonly represents the contextual 'readonly' modifier.
	KwReadonly // readonly
	// KwSatisfies represents the contextual 'satisfies' operator.
	KwSatisfies // satisfies
	// KwSet represents the contextual 'set' accessor keyword.
	KwSet // set
	// KwStatic represents the contextual 'static' modifier.
	KwStatic // static
	// KwType represents the contextual 'type' keyword.
	KwType // type
	// KwYield represents the 'yield' keyword.
	KwYield // yield

	// Literals.

	// NumberLit represents a numeric literal, including bigint forms.
	NumberLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// RegexLit represents a regular expression literal.
	RegexLit
	// TemplateFull represents `...` with no interpolation.
	TemplateFull
	// TemplateHead represents `...${ opening a template with interpolation.
	TemplateHead
	// TemplateMiddle represents }...${ between interpolations.
	TemplateMiddle
	// TemplateTail represents }...` closing a template.
	TemplateTail

	// Punctuation and operators.

	LParen      // (
	RParen      // )
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]
	Semicolon   // ;
	Comma       // ,
	Dot         // .
	DotDotDot   // ...
	Colon       // :
	Question    // ?
	QuestionDot // ?.
	Arrow       // =>
	At          // @

	Assign         // =
	PlusAssign     // +=
	MinusAssign    // -=
	StarAssign     // *=
	SlashAssign    // /=
	PercentAssign  // %=
	StarStarAssign // **=
	ShlAssign      // <<=
	ShrAssign      // >>=
	UShrAssign     // >>>=
	AmpAssign      // &=
	PipeAssign     // |=
	CaretAssign    // ^=
	AndAndAssign   // &&=
	OrOrAssign     // ||=
	QQAssign       // ??=

	Plus             // +
	Minus            // -
	Star             // *
	StarStar         // **
	Slash            // /
	Percent          // %
	PlusPlus         // ++
	MinusMinus       // --
	Shl              // <<
	Shr              // >>
	UShr             // >>>
	Amp              // &
	Pipe             // |
	Caret            // ^
	Tilde            // ~
	Bang             // !
	AndAnd           // &&
	OrOr             // ||
	QuestionQuestion // ??
	Lt               // <
	Gt               // >
	LtEq             // <=
	GtEq             // >=
	EqEq             // ==
	EqEqEq           // ===
	BangEq           // !=
	BangEqEq         // !==
)
