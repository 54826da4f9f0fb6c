package scheme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/parsec/parsec"
)

// Library is a named collection of schemes, usually loaded from a file:
//
//	[schemes.point]
//	description = "x,y pair"
//	pattern = 'float64 "," float64'
//
//	[schemes.call]
//	[[schemes.call.parts]]
//	until = "("
//	[[schemes.call.parts]]
//	value = "float"
//	[[schemes.call.parts]]
//	match = ")"
type Library struct {
	Schemes map[string]Def `toml:"schemes" yaml:"schemes"`
}

// Def defines one scheme, either as notation or as a list of parts.
type Def struct {
	Description string `toml:"description" yaml:"description"`
	Pattern     string `toml:"pattern" yaml:"pattern"`
	Parts       []Part `toml:"parts" yaml:"parts"`
}

// Part is one element of a structured scheme. Exactly one of Value,
// Match, Until, Delimited, Repeat or Pattern must be set.
type Part struct {
	Value     string `toml:"value" yaml:"value"`
	Match     any    `toml:"match" yaml:"match"`
	Type      string `toml:"type" yaml:"type"` // numeric type of Match
	Until     string `toml:"until" yaml:"until"`
	Delimited string `toml:"delimited" yaml:"delimited"`
	Repeat    *int   `toml:"repeat" yaml:"repeat"`
	Of        []Part `toml:"of" yaml:"of"` // parts chained inside Repeat
	Pattern   string `toml:"pattern" yaml:"pattern"`
}

// LoadFile reads a library, choosing the format from the file extension
// (.toml, .yaml or .yml).
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scheme library: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return DecodeTOML(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("unsupported scheme library format: %s (expected .toml, .yaml or .yml)", ext)
	}
}

// DecodeTOML reads a library in TOML. Unknown keys are an error.
func DecodeTOML(r io.Reader) (*Library, error) {
	var lib Library
	md, err := toml.NewDecoder(r).Decode(&lib)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode toml: unknown keys: %s", strings.Join(keys, ", "))
	}
	return &lib, nil
}

// DecodeYAML reads a library in YAML. Unknown keys are an error.
func DecodeYAML(r io.Reader) (*Library, error) {
	var lib Library
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lib); err != nil {
		if errors.Is(err, io.EOF) {
			return &lib, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &lib, nil
}

// Names returns the scheme names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.Schemes))
	for name := range l.Schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile builds the parser tree of the named scheme.
func (l *Library) Compile(name string) (parsec.Node, error) {
	def, ok := l.Schemes[name]
	if !ok {
		return nil, fmt.Errorf("scheme %q not found", name)
	}
	node, err := def.Compile()
	if err != nil {
		return nil, fmt.Errorf("scheme %q: %w", name, err)
	}
	return node, nil
}

// Compile builds the parser tree of the definition.
func (d Def) Compile() (parsec.Node, error) {
	switch {
	case d.Pattern != "" && len(d.Parts) > 0:
		return nil, errors.New("both pattern and parts are set")
	case d.Pattern != "":
		return Compile(d.Pattern)
	case len(d.Parts) > 0:
		return compileParts(d.Parts)
	}
	return nil, errors.New("neither pattern nor parts are set")
}

func compileParts(parts []Part) (parsec.Node, error) {
	nodes := make([]parsec.Node, len(parts))
	for i, part := range parts {
		node, err := part.Compile()
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i+1, err)
		}
		nodes[i] = node
	}
	return chain(nodes), nil
}

// Compile builds the parser tree of a single part.
func (p Part) Compile() (parsec.Node, error) {
	set := 0
	for _, present := range []bool{p.Value != "", p.Match != nil, p.Until != "", p.Delimited != "", p.Repeat != nil, p.Pattern != ""} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("expected exactly one of value, match, until, delimited, repeat or pattern, found %d", set)
	}
	if p.Type != "" && p.Match == nil {
		return nil, errors.New("type is only valid with match")
	}
	if len(p.Of) > 0 && p.Repeat == nil {
		return nil, errors.New("of is only valid with repeat")
	}

	switch {
	case p.Value != "":
		if p.Value == "rest" {
			return parsec.Rest(), nil
		}
		kind, ok := parsec.LookupKind(p.Value)
		if !ok || kind == parsec.KindDelimited {
			return nil, fmt.Errorf("unknown value type %q", p.Value)
		}
		return parsec.Value(kind), nil

	case p.Match != nil:
		return matchPart(p.Match, p.Type)

	case p.Until != "":
		return parsec.Until(p.Until), nil

	case p.Delimited != "":
		return parsec.Delimited(p.Delimited), nil

	case p.Repeat != nil:
		if *p.Repeat < 0 {
			return nil, fmt.Errorf("invalid repeat count %d", *p.Repeat)
		}
		if len(p.Of) == 0 {
			return nil, errors.New("repeat without of")
		}
		body, err := compileParts(p.Of)
		if err != nil {
			return nil, err
		}
		return parsec.Repeat(*p.Repeat, body), nil
	}

	return Compile(p.Pattern)
}

// matchPart converts a decoded TOML/YAML value into a literal matcher.
// Numbers keep their natural type unless typeName says otherwise.
func matchPart(v any, typeName string) (parsec.Node, error) {
	if s, ok := v.(string); ok {
		if typeName != "" {
			return nil, fmt.Errorf("type %q given for string match", typeName)
		}
		return parsec.Match(s), nil
	}

	var text string
	kind := parsec.KindInt
	switch n := v.(type) {
	case int:
		text = strconv.Itoa(n)
	case int64:
		text = strconv.FormatInt(n, 10)
	case uint64:
		text = strconv.FormatUint(n, 10)
	case float64:
		text = strconv.FormatFloat(n, 'f', -1, 64)
		kind = parsec.KindFloat64
	default:
		return nil, fmt.Errorf("unsupported match value %v (%T)", v, v)
	}

	if typeName != "" {
		k, ok := parsec.LookupKind(typeName)
		if !ok || !k.IsNumeric() {
			return nil, fmt.Errorf("not a numeric type: %q", typeName)
		}
		kind = k
	}
	lit, err := literal(kind, text)
	if err != nil {
		return nil, fmt.Errorf("invalid %s literal %s: %w", kind, text, err)
	}
	return parsec.Match(lit), nil
}
