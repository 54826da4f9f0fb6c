package ebnflex

import (
	"io"
	"strings"
	"testing"
)

const testGrammar = `
token  = space | ident | number | arrow | minus .
space  = " " { " " } .
ident  = letter { letter | digit } .
letter = "a" … "z" | "é" .
digit  = "0" … "9" .
number = [ "-" ] digit { digit } [ "." { digit } ] .
arrow  = "->" .
minus  = "-" .
`

func loadTestGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := Load("test.ebnf", strings.NewReader(testGrammar), "token")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return g
}

func TestLoadTokens(t *testing.T) {
	g := loadTestGrammar(t)
	want := []string{"space", "ident", "number", "arrow", "minus"}
	got := g.Tokens()
	if len(got) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
	}{
		{"syntax", `token = "a" `},
		{"missing production", `token = a . a = b .`},
		{"unreachable", `token = a . a = "a" . b = "b" .`},
		{"no start", `other = "a" .`},
		{"start not names", `token = "a" | "b" .`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load("test.ebnf", strings.NewReader(tt.grammar), "token"); err == nil {
				t.Errorf("Load(%q) error = nil, want error", tt.grammar)
			}
		})
	}
}

func TestNextToken(t *testing.T) {
	l := NewLexer(loadTestGrammar(t), []byte("x1 -12.5->é a"), "")
	want := []struct {
		kind    string
		literal string
	}{
		{"ident", "x1"},
		{"space", " "},
		{"number", "-12.5"},
		{"arrow", "->"},
		{"ident", "é"},
		{"space", " "},
		{"ident", "a"},
		{KindEOF, ""},
	}

	tokens := l.Tokenize()
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Literal != w.literal {
			t.Errorf("token %d = %s %q, want %s %q", i, tokens[i].Kind, tokens[i].Literal, w.kind, w.literal)
		}
	}
}

func TestNextTokenLongestMatch(t *testing.T) {
	// "-" alone only matches minus; "-5" is longer as a number.
	l := NewLexer(loadTestGrammar(t), []byte("- -5"), "")
	for _, want := range []string{"minus", "space", "number"} {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken error: %v", err)
		}
		if tok.Kind != want {
			t.Errorf("Kind = %s, want %s (%q)", tok.Kind, want, tok.Literal)
		}
	}
}

func TestNextTokenError(t *testing.T) {
	l := NewLexer(loadTestGrammar(t), []byte("a?b"), "input")
	tokens := l.Tokenize()
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(tokens), tokens)
	}
	if tokens[1].Kind != KindError || tokens[1].Literal != "?" {
		t.Errorf("token 1 = %s %q, want ERROR \"?\"", tokens[1].Kind, tokens[1].Literal)
	}
	if got := tokens[1].Position.String(); got != "input:1:2" {
		t.Errorf("Position = %s, want input:1:2", got)
	}
}

func TestNextTokenEOF(t *testing.T) {
	l := NewLexer(loadTestGrammar(t), nil, "")
	tok, err := l.NextToken()
	if err != io.EOF {
		t.Errorf("error = %v, want io.EOF", err)
	}
	if tok.Kind != KindEOF {
		t.Errorf("Kind = %s, want %s", tok.Kind, KindEOF)
	}
}

func TestPositionsAcrossLines(t *testing.T) {
	g, err := Load("lines.ebnf", strings.NewReader(`token = nl | word . nl = "\n" . word = "a" … "z" { "a" … "z" } .`), "token")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	tokens := NewLexer(g, []byte("ab\ncd"), "").Tokenize()
	last := tokens[2]
	if last.Literal != "cd" || last.Position.Line != 2 || last.Position.Column != 1 || last.Position.Offset != 3 {
		t.Errorf("token = %+v, want cd at 2:1 offset 3", last)
	}
}

func TestNextTokenTieGoesToFirstKind(t *testing.T) {
	g, err := Load("kw.ebnf", strings.NewReader(`token = keyword | word . keyword = "if" . word = "a" … "z" { "a" … "z" } .`), "token")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	tokens := NewLexer(g, []byte("if"), "").Tokenize()
	if tokens[0].Kind != "keyword" {
		t.Errorf("Kind = %s, want keyword", tokens[0].Kind)
	}
	tokens = NewLexer(g, []byte("iffy"), "").Tokenize()
	if tokens[0].Kind != "word" || tokens[0].Literal != "iffy" {
		t.Errorf("token = %s %q, want word \"iffy\"", tokens[0].Kind, tokens[0].Literal)
	}
}
