package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dataconvert/go-dataconvert/ir"
)

// The YAML codec is a hand-written, line-oriented parser for a YAML
// subset: block mappings, block sequences, sequences of mappings, the
// scalar types null/bool/int/float/string, and comments. Anchors,
// aliases, tags, flow collections, block scalars, and multi-document
// streams are rejected with ErrUnsupported.
//
// Each physical line's leading-space count is its indentation level. A
// stack of open containers tracks one frame per level; a deeper line
// opens a child container under the pending key or sequence entry, a
// shallower line pops to a previously seen level. A dedent that matches
// no open level is an error.

type yamlFrame struct {
	indent int
	node   *ir.Node

	// pendingKey is a mapping key whose value starts on a following
	// line (or is null if none follows).
	pendingKey  string
	hasPending  bool
	pendingItem bool

	// sameIndent marks a sequence opened at its parent mapping's own
	// indentation, as in "key:\n- a\n- b".
	sameIndent bool
}

type yamlParser struct {
	stack []*yamlFrame
	root  *ir.Node
	ln    int
}

func parseYAML(d []byte) (*ir.Node, error) {
	p := &yamlParser{}
	for i, raw := range strings.Split(string(d), "\n") {
		p.ln = i + 1
		line := stripYAMLComment(strings.TrimSuffix(raw, "\r"))
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if text == "---" || text == "..." {
			return nil, fmt.Errorf("%w: yaml: multi-document streams are not supported (line %d)",
				ErrUnsupported, p.ln)
		}
		indent, err := p.indentOf(line)
		if err != nil {
			return nil, err
		}
		if err := p.line(indent, text); err != nil {
			return nil, err
		}
	}
	return p.finish(), nil
}

func (p *yamlParser) top() *yamlFrame {
	return p.stack[len(p.stack)-1]
}

func (p *yamlParser) push(f *yamlFrame) {
	p.stack = append(p.stack, f)
}

func (p *yamlParser) pop() {
	f := p.top()
	p.resolveNull(f)
	p.stack = p.stack[:len(p.stack)-1]
}

// resolveNull closes a frame's pending slot: a key (or "-") with no
// value and no nested block means null.
func (p *yamlParser) resolveNull(f *yamlFrame) {
	if f.hasPending {
		ir.Set(f.node, f.pendingKey, ir.Null())
		f.hasPending = false
	}
	if f.pendingItem {
		ir.Append(f.node, ir.Null())
		f.pendingItem = false
	}
}

func (p *yamlParser) indentOf(line string) (int, error) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
		case '\t':
			return 0, fmt.Errorf("%w: yaml: tab in indentation (line %d)", ErrParse, p.ln)
		default:
			return i, nil
		}
	}
	return len(line), nil
}

func (p *yamlParser) line(indent int, text string) error {
	if text[0] == '{' || text[0] == '[' {
		return fmt.Errorf("%w: yaml: flow collections are not supported (line %d)",
			ErrUnsupported, p.ln)
	}
	if len(p.stack) == 0 {
		if p.root != nil {
			return fmt.Errorf("%w: yaml: content after scalar document (line %d)",
				ErrParse, p.ln)
		}
		return p.open(indent, text, nil)
	}
	top := p.top()
	if indent > top.indent {
		if top.hasPending || top.pendingItem {
			return p.open(indent, text, top)
		}
		return fmt.Errorf("%w: yaml: unexpected indentation (line %d)", ErrParse, p.ln)
	}
	for indent < p.top().indent {
		p.pop()
		if len(p.stack) == 0 {
			return fmt.Errorf("%w: yaml: inconsistent dedent (line %d)", ErrParse, p.ln)
		}
	}
	top = p.top()
	if top.indent != indent {
		return fmt.Errorf("%w: yaml: inconsistent dedent (line %d)", ErrParse, p.ln)
	}
	// a sequence directly under a key at the key's own indentation
	if top.node.Type == ir.ObjectType && top.hasPending && isSeqEntry(text) {
		arr := &ir.Node{Type: ir.ArrayType}
		ir.Set(top.node, top.pendingKey, arr)
		top.hasPending = false
		p.push(&yamlFrame{indent: indent, node: arr, sameIndent: true})
		return p.entry(p.top(), indent, text)
	}
	// leaving a same-indent sequence back into its mapping
	if top.node.Type == ir.ArrayType && top.sameIndent && !isSeqEntry(text) {
		p.pop()
		top = p.top()
	}
	return p.entry(top, indent, text)
}

// open starts a new container (or the document root) from its first line.
func (p *yamlParser) open(indent int, text string, parent *yamlFrame) error {
	var node *ir.Node
	switch {
	case isSeqEntry(text):
		node = &ir.Node{Type: ir.ArrayType}
	case isMapEntry(text):
		node = ir.Object()
	default:
		if parent != nil {
			return fmt.Errorf("%w: yaml: expected mapping or sequence block (line %d)",
				ErrParse, p.ln)
		}
		v, err := p.scalar(text)
		if err != nil {
			return err
		}
		p.root = v
		return nil
	}
	if parent == nil {
		p.root = node
	} else {
		p.attach(parent, node)
	}
	p.push(&yamlFrame{indent: indent, node: node})
	return p.entry(p.top(), indent, text)
}

func (p *yamlParser) attach(f *yamlFrame, node *ir.Node) {
	if f.hasPending {
		ir.Set(f.node, f.pendingKey, node)
		f.hasPending = false
		return
	}
	ir.Append(f.node, node)
	f.pendingItem = false
}

// entry handles a line at an open frame's own level.
func (p *yamlParser) entry(f *yamlFrame, indent int, text string) error {
	p.resolveNull(f)
	if f.node.Type == ir.ArrayType {
		if !isSeqEntry(text) {
			return fmt.Errorf("%w: yaml: expected sequence entry (line %d)", ErrParse, p.ln)
		}
		return p.item(f, indent, seqRest(text))
	}
	if isSeqEntry(text) {
		return fmt.Errorf("%w: yaml: unexpected sequence entry in mapping (line %d)",
			ErrParse, p.ln)
	}
	key, val, err := p.splitKeyVal(text)
	if err != nil {
		return err
	}
	return p.mapEntry(f, key, val)
}

// item handles the remainder of a "- ..." line. The remainder starts
// two columns past the dash, so inline mappings and nested sequences
// open a frame at indent+2.
func (p *yamlParser) item(f *yamlFrame, indent int, rest string) error {
	if rest == "" {
		f.pendingItem = true
		return nil
	}
	if rest[0] == '{' || rest[0] == '[' {
		return fmt.Errorf("%w: yaml: flow collections are not supported (line %d)",
			ErrUnsupported, p.ln)
	}
	if isSeqEntry(rest) {
		arr := &ir.Node{Type: ir.ArrayType}
		ir.Append(f.node, arr)
		p.push(&yamlFrame{indent: indent + 2, node: arr})
		return p.item(p.top(), indent+2, seqRest(rest))
	}
	if isMapEntry(rest) {
		obj := ir.Object()
		ir.Append(f.node, obj)
		p.push(&yamlFrame{indent: indent + 2, node: obj})
		key, val, err := p.splitKeyVal(rest)
		if err != nil {
			return err
		}
		return p.mapEntry(p.top(), key, val)
	}
	v, err := p.scalar(rest)
	if err != nil {
		return err
	}
	ir.Append(f.node, v)
	return nil
}

func (p *yamlParser) mapEntry(f *yamlFrame, key, val string) error {
	if val == "" {
		f.pendingKey = key
		f.hasPending = true
		return nil
	}
	v, err := p.scalar(val)
	if err != nil {
		return err
	}
	ir.Set(f.node, key, v)
	return nil
}

func (p *yamlParser) finish() *ir.Node {
	for len(p.stack) > 0 {
		p.pop()
	}
	if p.root == nil {
		// empty document
		return ir.Null()
	}
	return p.root
}

func isSeqEntry(text string) bool {
	return text == "-" || strings.HasPrefix(text, "- ")
}

func seqRest(text string) string {
	if text == "-" {
		return ""
	}
	return strings.TrimSpace(text[2:])
}

func isMapEntry(text string) bool {
	p := &yamlParser{}
	_, _, err := p.splitKeyVal(text)
	return err == nil
}

// splitKeyVal splits "key: value" (or "key:") on the first colon that
// ends the key. Quoted keys keep colons; unquoted keys end at ": " or a
// trailing ":".
func (p *yamlParser) splitKeyVal(text string) (string, string, error) {
	if text[0] == '"' || text[0] == '\'' {
		end := closeQuote(text)
		if end < 0 {
			return "", "", fmt.Errorf("%w: yaml: unterminated quoted key (line %d)",
				ErrParse, p.ln)
		}
		key, err := p.unquote(text[:end+1])
		if err != nil {
			return "", "", err
		}
		rest := strings.TrimSpace(text[end+1:])
		if rest == ":" {
			return key, "", nil
		}
		if strings.HasPrefix(rest, ": ") {
			return key, strings.TrimSpace(rest[2:]), nil
		}
		return "", "", fmt.Errorf("%w: yaml: expected ':' after key (line %d)",
			ErrParse, p.ln)
	}
	if idx := strings.Index(text, ": "); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+2:]), nil
	}
	if strings.HasSuffix(text, ":") {
		return strings.TrimSpace(text[:len(text)-1]), "", nil
	}
	return "", "", fmt.Errorf("%w: yaml: expected 'key: value' (line %d)", ErrParse, p.ln)
}

// closeQuote returns the index of the closing quote of a scalar that
// starts with one, or -1.
func closeQuote(s string) int {
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch {
		case q == '"' && s[i] == '\\':
			i++
		case s[i] == q:
			if q == '\'' && i+1 < len(s) && s[i+1] == '\'' {
				i++
				continue
			}
			return i
		}
	}
	return -1
}

// scalar coerces a value in fixed order: null, bool, int, float, else
// string. Only true/false are booleans; yes/no stay strings, avoiding
// the YAML-1.1-vs-1.2 ambiguity.
func (p *yamlParser) scalar(raw string) (*ir.Node, error) {
	switch raw {
	case "", "null", "~":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	if raw[0] == '"' || raw[0] == '\'' {
		s, err := p.unquote(raw)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	if err := p.checkScalar(raw); err != nil {
		return nil, err
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		// inf and nan spellings stay strings
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return ir.FromFloat(f), nil
		}
	}
	return ir.FromString(raw), nil
}

// checkScalar rejects unquoted scalars that begin a construct outside
// the supported subset rather than mis-parsing them as strings.
func (p *yamlParser) checkScalar(raw string) error {
	switch raw[0] {
	case '&':
		return fmt.Errorf("%w: yaml: anchors are not supported (line %d)", ErrUnsupported, p.ln)
	case '*':
		return fmt.Errorf("%w: yaml: aliases are not supported (line %d)", ErrUnsupported, p.ln)
	case '!':
		return fmt.Errorf("%w: yaml: tags are not supported (line %d)", ErrUnsupported, p.ln)
	case '{', '[':
		return fmt.Errorf("%w: yaml: flow collections are not supported (line %d)", ErrUnsupported, p.ln)
	case '|', '>':
		if raw == "|" || raw == ">" || raw == "|-" || raw == "|+" || raw == ">-" || raw == ">+" {
			return fmt.Errorf("%w: yaml: block scalars are not supported (line %d)", ErrUnsupported, p.ln)
		}
	}
	return nil
}

func (p *yamlParser) unquote(raw string) (string, error) {
	q := raw[0]
	if len(raw) < 2 || raw[len(raw)-1] != q {
		return "", fmt.Errorf("%w: yaml: unterminated quoted scalar (line %d)", ErrParse, p.ln)
	}
	if q == '"' {
		if s, err := strconv.Unquote(raw); err == nil {
			return s, nil
		}
		return raw[1 : len(raw)-1], nil
	}
	return strings.ReplaceAll(raw[1:len(raw)-1], "''", "'"), nil
}

// stripYAMLComment removes a trailing comment. A '#' starts a comment
// only outside quotes and only at line start or after whitespace.
func stripYAMLComment(line string) string {
	inS, inD := false, false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inD:
			if c == '\\' {
				i++
			} else if c == '"' {
				inD = false
			}
		case inS:
			if c == '\'' {
				inS = false
			}
		default:
			switch c {
			case '"':
				inD = true
			case '\'':
				inS = true
			case '#':
				if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
					return line[:i]
				}
			}
		}
	}
	return line
}
