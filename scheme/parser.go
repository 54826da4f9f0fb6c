// Package scheme builds parsec parser trees from a compact text notation
// and from TOML or YAML scheme libraries.
//
// The notation is a whitespace separated list of terms chained left to
// right:
//
//	int32 float64 string   primitive parsers ("rest" is the same as "string")
//	"text"                 literal that must follow
//	=42  =2.5  =uint8:7    numeric literal, optionally typed
//	[3] term               term repeated three times
//	( term term ... )      group, chained as one term
//	until(")")             text before ")", consuming ")"
//	delimited(",")         text before ",", leaving "," in the input
//
// For example `float "," [3]" " string` reads "0.1415,   some string" as
// (0.1415, "some string"). A # starts a comment that runs to the end of
// the line.
package scheme

import (
	"fmt"
	"strings"

	"github.com/dhamidi/parsec/parsec"
)

// SyntaxError reports malformed notation.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type parser struct {
	tokens []Token
	pos    int
}

// Compile parses notation into a parser tree.
func Compile(src string) (parsec.Node, error) {
	tokens := NewLexer([]byte(src)).Tokenize()
	if last := tokens[len(tokens)-1]; last.Kind == TokenError {
		return nil, &SyntaxError{Pos: last.Pos, Msg: last.Literal}
	}

	p := &parser{tokens: tokens}
	nodes, err := p.parseTerms(TokenEOF)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &SyntaxError{Pos: p.peek().Pos, Msg: "empty scheme"}
	}
	return chain(nodes), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) parsec.Node {
	node, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("scheme: Compile(%q): %v", src, err))
	}
	return node
}

func chain(nodes []parsec.Node) parsec.Node {
	parts := make([]any, len(nodes))
	for i, n := range nodes {
		parts[i] = n
	}
	return parsec.Seq(parts...)
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.advance()
	if tok.Kind != kind {
		return tok, p.errorf(tok, "expected %s, found %s", kind, describe(tok))
	}
	return tok, nil
}

func (p *parser) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseTerms(end TokenKind) ([]parsec.Node, error) {
	var nodes []parsec.Node
	for p.peek().Kind != end && p.peek().Kind != TokenEOF {
		node, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if _, err := p.expect(end); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (p *parser) parseTerm() (parsec.Node, error) {
	tok := p.advance()
	switch tok.Kind {
	case TokenIdent:
		return p.parseNamed(tok)

	case TokenString:
		return parsec.Match(tok.Literal), nil

	case TokenLBracket:
		num, err := p.expect(TokenNumber)
		if err != nil {
			return nil, err
		}
		count, err := literal(parsec.KindInt, num.Literal)
		if err != nil || count.(int) < 0 {
			return nil, p.errorf(num, "invalid repeat count %s", num.Literal)
		}
		if _, err := p.expect(TokenRBracket); err != nil {
			return nil, err
		}
		if p.peek().Kind == TokenEOF {
			return nil, p.errorf(p.peek(), "repeat without a term")
		}
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return parsec.Repeat(count.(int), body), nil

	case TokenLParen:
		nodes, err := p.parseTerms(TokenRParen)
		if err != nil {
			return nil, err
		}
		if len(nodes) == 0 {
			return nil, p.errorf(tok, "empty group")
		}
		return chain(nodes), nil

	case TokenAssign:
		return p.parseNumericMatch()
	}

	return nil, p.errorf(tok, "unexpected %s", describe(tok))
}

func (p *parser) parseNamed(tok Token) (parsec.Node, error) {
	switch tok.Literal {
	case "rest":
		return parsec.Rest(), nil
	case "until", "delimited":
		if _, err := p.expect(TokenLParen); err != nil {
			return nil, err
		}
		delim, err := p.expect(TokenString)
		if err != nil {
			return nil, err
		}
		if delim.Literal == "" {
			return nil, p.errorf(delim, "empty delimiter")
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		if tok.Literal == "until" {
			return parsec.Until(delim.Literal), nil
		}
		return parsec.Delimited(delim.Literal), nil
	}

	kind, ok := parsec.LookupKind(tok.Literal)
	if !ok || kind == parsec.KindDelimited {
		return nil, p.errorf(tok, "unknown value type %q", tok.Literal)
	}
	return parsec.Value(kind), nil
}

// parseNumericMatch parses the part after '=': an optional "kind:" prefix
// and a number.
func (p *parser) parseNumericMatch() (parsec.Node, error) {
	var kind parsec.Kind
	if p.peek().Kind == TokenIdent {
		name := p.advance()
		k, ok := parsec.LookupKind(name.Literal)
		if !ok || !k.IsNumeric() {
			return nil, p.errorf(name, "not a numeric type: %q", name.Literal)
		}
		if _, err := p.expect(TokenColon); err != nil {
			return nil, err
		}
		kind = k
	}

	num, err := p.expect(TokenNumber)
	if err != nil {
		return nil, err
	}
	if kind == parsec.KindInvalid {
		kind = defaultKind(num.Literal)
	}
	v, err := literal(kind, num.Literal)
	if err != nil {
		return nil, p.errorf(num, "invalid %s literal %s: %v", kind, num.Literal, err)
	}
	return parsec.Match(v), nil
}

func defaultKind(number string) parsec.Kind {
	if strings.Contains(number, ".") {
		return parsec.KindFloat64
	}
	return parsec.KindInt
}

// literal decodes text with the primitive parser for kind, requiring the
// whole text to be consumed, so literals mean exactly what the matching
// parser would read.
func literal(kind parsec.Kind, text string) (any, error) {
	return parsec.New(parsec.Value(kind), parsec.WithRequireEnd()).Parse(text)
}

func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of scheme"
	case TokenString:
		return fmt.Sprintf("string %q", tok.Literal)
	case TokenIdent, TokenNumber:
		return fmt.Sprintf("%s %s", strings.ToLower(tok.Kind.String()), tok.Literal)
	}
	return fmt.Sprintf("%q", tok.Literal)
}
