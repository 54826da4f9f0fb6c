package parsec

import (
	"errors"
	"sync"
	"testing"
)

func TestParseFloatCommaString(t *testing.T) {
	whitespace := Repeat(3, Match(" "))
	p := Seq(Float32(), ",", whitespace, Rest())

	got, err := Parse(p, "0.1415,   some string")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := Tuple{float32(0.1415), "some string"}
	if !equalValues(got, want) {
		t.Errorf("Parse = %#v, want %#v", got, want)
	}
}

func TestParseNameAndArgument(t *testing.T) {
	p := Seq(Rest().Then("("), Float32(), ")")

	got, err := Parse(p, "float(3.14)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := Tuple{"float", float32(3.14)}
	if !equalValues(got, want) {
		t.Errorf("Parse = %#v, want %#v", got, want)
	}
}

func TestParseListAndTrailer(t *testing.T) {
	p := Seq("([", Repeat(3, Then(Int(), ",")), "] ", Until(")"))

	got, err := Parse(p, "([11,22,33,] a string)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := Tuple{Sequence{11, 22, 33}, "a string"}
	if !equalValues(got, want) {
		t.Errorf("Parse = %#v, want %#v", got, want)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		node  Node
		input string
		want  []error
	}{
		{"unsigned with sign", Uint(), "-5", []error{ErrUnexpectedSign}},
		{"int from empty", Int(), "", []error{ErrEndOfInput}},
		{"int from letters", Int(), "abc", []error{ErrExpectedDigit}},
		{"missing literal", Seq(Int(), ",", Int()), "1;2", []error{ErrMatch}},
		{"literal cut short", Seq(Int(), "=>"), "1=", []error{ErrMatch, ErrEndOfInput}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.node, tt.input)
			if got != nil {
				t.Errorf("Parse = %#v, want nil", got)
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("error = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestParserRequireEnd(t *testing.T) {
	p := New(Int(), WithRequireEnd())

	if _, err := p.Parse("12"); err != nil {
		t.Errorf("Parse(12) error: %v", err)
	}

	_, err := p.Parse("12x")
	if !errors.Is(err, ErrTrailingInput) {
		t.Fatalf("Parse(12x) error = %v, want %v", err, ErrTrailingInput)
	}
	var perr *Error
	if !errors.As(err, &perr) || perr.Offset != 2 {
		t.Errorf("error = %#v, want offset 2", err)
	}

	if _, err := Parse(Int(), "12x"); err != nil {
		t.Errorf("Parse without WithRequireEnd error: %v", err)
	}
}

func TestParserReuse(t *testing.T) {
	p := New(Seq(Int(), "+", Int()))

	if got := p.Shape().String(); got != "(int, int)" {
		t.Errorf("Shape() = %s, want (int, int)", got)
	}

	inputs := map[string]Tuple{
		"1+2":   {1, 2},
		"30+40": {30, 40},
		"-5+5":  {-5, 5},
	}
	for input, want := range inputs {
		got, err := p.Parse(input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", input, err)
			continue
		}
		if !equalValues(got, want) {
			t.Errorf("Parse(%q) = %#v, want %#v", input, got, want)
		}
	}
}

func TestParserConcurrentUse(t *testing.T) {
	p := New(Seq(Rest().Then("="), Uint64()))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Parse("key=42")
			if err != nil {
				errs <- err
				return
			}
			if !equalValues(got, Tuple{"key", uint64(42)}) {
				errs <- errors.New("unexpected result")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
