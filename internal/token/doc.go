// Package token defines the TypeScript token vocabulary shared by the lexer
// and parser. Contextual keywords (as, satisfies, namespace, ...) get their
// own kinds so downstream code switches on Kind instead of comparing text;
// the parser treats them as identifiers outside their contexts.
package token
