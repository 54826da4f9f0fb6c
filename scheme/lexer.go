package scheme

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/parsec/ebnflex"
)

//go:embed scheme.ebnf
var grammarSource string

var tokenGrammar = mustLoadGrammar()

func mustLoadGrammar() *ebnflex.Grammar {
	g, err := ebnflex.Load("scheme.ebnf", strings.NewReader(grammarSource), "token")
	if err != nil {
		panic(fmt.Sprintf("scheme: token grammar: %v", err))
	}
	return g
}

// Grammar returns the EBNF source of the notation's tokens.
func Grammar() string {
	return grammarSource
}

var tokenKinds = map[string]TokenKind{
	"ident":    TokenIdent,
	"number":   TokenNumber,
	"string":   TokenString,
	"lbracket": TokenLBracket,
	"rbracket": TokenRBracket,
	"lparen":   TokenLParen,
	"rparen":   TokenRParen,
	"assign":   TokenAssign,
	"colon":    TokenColon,
}

// Lexer splits scheme notation into tokens, skipping white space and
// comments.
type Lexer struct {
	lex *ebnflex.Lexer
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{lex: ebnflex.NewLexer(tokenGrammar, input, "")}
}

func (l *Lexer) Position() Position {
	return l.lex.Position()
}

// NextToken returns the next token. Malformed input yields a TokenError
// whose Literal describes the problem.
func (l *Lexer) NextToken() Token {
	for {
		tok, err := l.lex.NextToken()
		if err == io.EOF {
			return Token{Kind: TokenEOF, Pos: tok.Position}
		}

		switch tok.Kind {
		case "space", "comment":
			continue
		case ebnflex.KindError:
			msg := "unexpected character " + strconv.Quote(tok.Literal)
			if tok.Literal == `"` {
				msg = "string not closed or with an unsupported escape"
			}
			return Token{Kind: TokenError, Literal: msg, Pos: tok.Position}
		case "string":
			s, err := strconv.Unquote(tok.Literal)
			if err != nil {
				return Token{Kind: TokenError, Literal: "malformed string " + tok.Literal, Pos: tok.Position}
			}
			return Token{Kind: TokenString, Literal: s, Pos: tok.Position}
		}

		kind, ok := tokenKinds[tok.Kind]
		if !ok {
			return Token{Kind: TokenError, Literal: "unknown token kind " + tok.Kind, Pos: tok.Position}
		}
		return Token{Kind: kind, Literal: tok.Literal, Pos: tok.Position}
	}
}

// Tokenize reads all tokens up to and including EOF or the first error.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF || tok.Kind == TokenError {
			return tokens
		}
	}
}
