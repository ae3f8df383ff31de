package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dataconvert/go-dataconvert/ir"
)

// encodeYAML emits block-style YAML matching the subset the parser
// reads: "key: value" mappings, "- item" sequences, nested blocks at a
// fixed 2-space step, and the literal spellings null/true/false. The
// indent option is ignored here; the parser pins sequence continuation
// lines at two columns past the dash.
//
// Empty collections are the one exception: they serialize as the flow
// tokens {} and [], which the subset parser does not read back.
func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type.IsLeaf() {
		s, err := yamlScalar(node)
		if err != nil {
			return err
		}
		return writeString(w, s+"\n")
	}
	if flow, ok := yamlEmptyFlow(node); ok {
		return writeString(w, flow+"\n")
	}
	return yamlBlock(node, w, 0)
}

func yamlEmptyFlow(node *ir.Node) (string, bool) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return "{}", true
		}
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return "[]", true
		}
	}
	return "", false
}

func yamlBlock(node *ir.Node, w io.Writer, depth int) error {
	switch node.Type {
	case ir.ObjectType:
		return yamlObjEntries(node, w, depth, 0)
	case ir.ArrayType:
		return yamlArrEntries(node, w, depth)
	default:
		return fmt.Errorf("%w: yaml: unknown node type %d", ErrEncoding, node.Type)
	}
}

func yamlObjEntries(node *ir.Node, w io.Writer, depth, from int) error {
	prefix := strings.Repeat("  ", depth)
	for i := from; i < len(node.Fields); i++ {
		key := yamlString(node.Fields[i].String)
		v := node.Values[i]
		if v.Type.IsLeaf() {
			s, err := yamlScalar(v)
			if err != nil {
				return err
			}
			if err := writeString(w, prefix+key+": "+s+"\n"); err != nil {
				return err
			}
			continue
		}
		if flow, ok := yamlEmptyFlow(v); ok {
			if err := writeString(w, prefix+key+": "+flow+"\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, prefix+key+":\n"); err != nil {
			return err
		}
		if err := yamlBlock(v, w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func yamlArrEntries(node *ir.Node, w io.Writer, depth int) error {
	prefix := strings.Repeat("  ", depth)
	for _, v := range node.Values {
		switch {
		case v.Type.IsLeaf():
			s, err := yamlScalar(v)
			if err != nil {
				return err
			}
			if err := writeString(w, prefix+"- "+s+"\n"); err != nil {
				return err
			}
		case v.Type == ir.ObjectType:
			if err := yamlObjItem(v, w, depth); err != nil {
				return err
			}
		default:
			// nested sequence: a bare dash, items one level deeper
			if flow, ok := yamlEmptyFlow(v); ok {
				if err := writeString(w, prefix+"- "+flow+"\n"); err != nil {
					return err
				}
				continue
			}
			if err := writeString(w, prefix+"-\n"); err != nil {
				return err
			}
			if err := yamlArrEntries(v, w, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// yamlObjItem renders a mapping inside a sequence with its first entry
// inline after the dash and the rest aligned under it.
func yamlObjItem(node *ir.Node, w io.Writer, depth int) error {
	prefix := strings.Repeat("  ", depth)
	if flow, ok := yamlEmptyFlow(node); ok {
		return writeString(w, prefix+"- "+flow+"\n")
	}
	key := yamlString(node.Fields[0].String)
	v := node.Values[0]
	if v.Type.IsLeaf() {
		s, err := yamlScalar(v)
		if err != nil {
			return err
		}
		if err := writeString(w, prefix+"- "+key+": "+s+"\n"); err != nil {
			return err
		}
	} else if flow, ok := yamlEmptyFlow(v); ok {
		if err := writeString(w, prefix+"- "+key+": "+flow+"\n"); err != nil {
			return err
		}
	} else {
		if err := writeString(w, prefix+"- "+key+":\n"); err != nil {
			return err
		}
		if err := yamlBlock(v, w, depth+2); err != nil {
			return err
		}
	}
	return yamlObjEntries(node, w, depth+1, 1)
}

func yamlScalar(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10), nil
		}
		f := *node.Float64
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "", fmt.Errorf("%w: yaml: cannot encode %v", ErrEncoding, f)
		}
		return floatString(f), nil
	case ir.StringType:
		return yamlString(node.String), nil
	}
	return "", fmt.Errorf("%w: yaml: not a scalar: %s", ErrEncoding, node.Type)
}

// yamlString quotes when the raw spelling would re-parse as a different
// type, start a construct, or lose whitespace.
func yamlString(s string) string {
	if !needsYAMLQuote(s) {
		return s
	}
	return strconv.Quote(s)
}

func needsYAMLQuote(s string) bool {
	if s == "" {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	switch s {
	case "null", "~", "true", "false":
		return true
	}
	if looksLikeYAMLNumber(s) {
		return true
	}
	switch s[0] {
	case '-', '?', ':', '#', '&', '*', '!', '|', '>', '%', '@', '`', '"', '\'', '[', ']', '{', '}', ',':
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") {
		return true
	}
	if strings.Contains(s, " #") {
		return true
	}
	return strings.ContainsAny(s, "\n\r\t")
}

func looksLikeYAMLNumber(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
