package scheme

import (
	"fmt"

	"github.com/dhamidi/parsec/ebnflex"
)

// Position is a location in scheme source.
type Position = ebnflex.Position

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenIdent
	TokenString
	TokenNumber
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenAssign
	TokenColon
)

var tokenNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenError:    "Error",
	TokenIdent:    "Identifier",
	TokenString:   "String",
	TokenNumber:   "Number",
	TokenLBracket: "[",
	TokenRBracket: "]",
	TokenLParen:   "(",
	TokenRParen:   ")",
	TokenAssign:   "=",
	TokenColon:    ":",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a lexical token of the scheme notation. For strings, Literal
// holds the unquoted value.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Literal)
}
