// Package ebnflex provides lexical scanning based on EBNF grammars.
//
// A token grammar names its token kinds in a start production made of
// alternatives, for example
//
//	token  = space | ident | number .
//	space  = " " { " " } .
//	ident  = "a" … "z" { "a" … "z" } .
//	number = "0" … "9" { "0" … "9" } .
//
// At each position the lexer tries every token kind and keeps the longest
// match; on a tie the kind listed first wins.
package ebnflex

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Kinds of the tokens the lexer produces on its own.
const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position. Kind is the name of
// the production that matched.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Grammar is a verified EBNF grammar together with its token kinds.
type Grammar struct {
	productions ebnf.Grammar
	tokens      []string
}

// Load parses and verifies a grammar. The start production must be a
// name or an alternative of names; those names are the token kinds.
func Load(filename string, r io.Reader, start string) (*Grammar, error) {
	productions, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(productions, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	var tokens []string
	switch e := productions[start].Expr.(type) {
	case *ebnf.Name:
		tokens = append(tokens, e.String)
	case ebnf.Alternative:
		for _, alt := range e {
			name, ok := alt.(*ebnf.Name)
			if !ok {
				return nil, fmt.Errorf("start production %s: alternatives must be production names", start)
			}
			tokens = append(tokens, name.String)
		}
	default:
		return nil, fmt.Errorf("start production %s must list token productions", start)
	}

	return &Grammar{productions: productions, tokens: tokens}, nil
}

// Tokens returns the token kinds in the order they are tried.
func (g *Grammar) Tokens() []string {
	return append([]string(nil), g.tokens...)
}

// noMatch is distinct from 0, which is a successful empty match.
const noMatch = -1

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	grammar  *Grammar
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length at offset, or noMatch
	visiting map[memoKey]bool // cycle detection
}

// NewLexer creates a lexer for the given grammar and input.
func NewLexer(grammar *Grammar, input []byte, filename string) *Lexer {
	return &Lexer{
		grammar:  grammar,
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// NextToken returns the next token from the input, or an EOF token and
// io.EOF at the end. A byte no token kind matches is returned as a
// one-byte ERROR token.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	bestKind := ""
	bestLen := 0
	for _, name := range l.grammar.tokens {
		if n := l.matchName(name, startOffset); n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		ch := l.advance()
		return Token{
			Kind:     KindError,
			Literal:  string([]byte{ch}),
			Position: startPos,
		}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// match returns the length of the longest match of expr at offset, or
// noMatch.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		return l.matchToken(e.String, offset)

	case *ebnf.Range:
		return l.matchRange(e, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := l.match(e.Body, offset); n != noMatch {
			return n
		}
		return 0

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)
	}
	return noMatch
}

// matchName matches a named production with memoization and cycle detection.
func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if result, ok := l.memo[key]; ok {
		return result
	}

	// Left recursion: the production is already being tried here.
	if l.visiting[key] {
		return noMatch
	}

	prod, ok := l.grammar.productions[name]
	if !ok {
		l.memo[key] = noMatch
		return noMatch
	}

	l.visiting[key] = true
	result := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = result
	return result
}

// matchToken matches a literal string token.
func (l *Lexer) matchToken(token string, offset int) int {
	if offset+len(token) > len(l.input) {
		return noMatch
	}
	if string(l.input[offset:offset+len(token)]) == token {
		return len(token)
	}
	return noMatch
}

// matchRange matches one UTF-8 encoded character in a range such as
// "a" … "z".
func (l *Lexer) matchRange(r *ebnf.Range, offset int) int {
	if offset >= len(l.input) {
		return noMatch
	}
	begin, _ := utf8.DecodeRuneInString(r.Begin.String)
	end, _ := utf8.DecodeRuneInString(r.End.String)
	ch, size := utf8.DecodeRune(l.input[offset:])
	if ch == utf8.RuneError && size <= 1 {
		return noMatch
	}
	if ch >= begin && ch <= end {
		return size
	}
	return noMatch
}

// Tokenize reads all tokens from input, ending with the EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens
		}
	}
}
