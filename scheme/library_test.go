package scheme

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/parsec/parsec"
)

func TestLoadFile(t *testing.T) {
	inputs := []struct {
		scheme string
		input  string
		shape  string
		want   any
	}{
		{"measurement", "0.1415,   some string", "(float32, string)", parsec.Tuple{float32(0.1415), "some string"}},
		{"call", "float(3.14)", "(delimited, float32)", parsec.Tuple{"float", float32(3.14)}},
		{"triple", "([11,22,33,] a string)", "([3]int, delimited)", parsec.Tuple{parsec.Sequence{11, 22, 33}, "a string"}},
		{"version", "v2:hello", "string", "hello"},
	}

	for _, file := range []string{"testdata/schemes.toml", "testdata/schemes.yaml"} {
		t.Run(file, func(t *testing.T) {
			lib, err := LoadFile(file)
			if err != nil {
				t.Fatalf("LoadFile error: %v", err)
			}

			wantNames := []string{"call", "measurement", "triple", "version"}
			if got := lib.Names(); !reflect.DeepEqual(got, wantNames) {
				t.Errorf("Names() = %v, want %v", got, wantNames)
			}

			for _, tt := range inputs {
				node, err := lib.Compile(tt.scheme)
				if err != nil {
					t.Errorf("Compile(%q) error: %v", tt.scheme, err)
					continue
				}
				if got := node.Shape().String(); got != tt.shape {
					t.Errorf("%s: Shape() = %s, want %s", tt.scheme, got, tt.shape)
				}
				got, err := parsec.Parse(node, tt.input)
				if err != nil {
					t.Errorf("%s: Parse error: %v", tt.scheme, err)
					continue
				}
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("%s: Parse = %#v, want %#v", tt.scheme, got, tt.want)
				}
			}
		})
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	if _, err := LoadFile("testdata/schemes.json"); err == nil {
		t.Errorf("LoadFile(missing json) error = nil, want error")
	}
	if _, err := LoadFile("library.go"); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("LoadFile(library.go) error = %v, want unsupported format", err)
	}
}

func TestDecodeTOMLUnknownKey(t *testing.T) {
	_, err := DecodeTOML(strings.NewReader(`
[schemes.x]
patern = "int"
`))
	if err == nil || !strings.Contains(err.Error(), "patern") {
		t.Errorf("error = %v, want unknown key patern", err)
	}
}

func TestDecodeYAMLUnknownKey(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("schemes:\n  x:\n    patern: int\n"))
	if err == nil {
		t.Errorf("error = nil, want unknown field error")
	}
}

func TestDecodeYAMLEmpty(t *testing.T) {
	lib, err := DecodeYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeYAML error: %v", err)
	}
	if len(lib.Names()) != 0 {
		t.Errorf("Names() = %v, want none", lib.Names())
	}
}

func TestLibraryCompileErrors(t *testing.T) {
	lib, err := DecodeYAML(strings.NewReader(`
schemes:
  both:
    pattern: int
    parts:
      - value: int
  neither:
    description: nothing here
  two_fields:
    parts:
      - value: int
        until: ","
  bad_type:
    parts:
      - value: int128
  string_with_type:
    parts:
      - match: "x"
        type: int
  negative:
    parts:
      - repeat: -1
        of:
          - value: int
  empty_repeat:
    parts:
      - repeat: 2
  stray_of:
    parts:
      - value: int
        of:
          - value: int
  bad_pattern:
    parts:
      - pattern: "(int"
  bad_literal:
    parts:
      - match: -3
        type: uint8
`))
	if err != nil {
		t.Fatalf("DecodeYAML error: %v", err)
	}

	for _, name := range lib.Names() {
		t.Run(name, func(t *testing.T) {
			if _, err := lib.Compile(name); err == nil {
				t.Errorf("Compile(%q) error = nil, want error", name)
			}
		})
	}

	if _, err := lib.Compile("missing"); err == nil {
		t.Errorf("Compile(missing) error = nil, want error")
	}
}

func TestPartMatchTypes(t *testing.T) {
	tests := []struct {
		name  string
		part  Part
		input string
	}{
		{"toml int", Part{Match: int64(7)}, "7"},
		{"yaml int", Part{Match: 7}, "7"},
		{"float", Part{Match: 2.0}, "2.0"},
		{"typed float", Part{Match: int64(3), Type: "float32"}, "3.00"},
		{"typed uint", Part{Match: uint64(9), Type: "uint64"}, "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := tt.part.Compile()
			if err != nil {
				t.Fatalf("Compile error: %v", err)
			}
			if _, err := parsec.New(node, parsec.WithRequireEnd()).Parse(tt.input); err != nil {
				t.Errorf("Parse(%q) error: %v", tt.input, err)
			}
		})
	}
}
